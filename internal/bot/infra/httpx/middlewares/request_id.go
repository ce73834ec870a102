package middlewares

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jcmexdev/whatsapp-orders/internal/pkg/telemetry"
)

const headerXRequestID = "X-Request-Id"

// RequestID honours an inbound X-Request-Id or mints a fresh UUID, stores it
// in the context for the logger, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := telemetry.ContextWithRequestID(r.Context(), requestID)
		w.Header().Set(headerXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
