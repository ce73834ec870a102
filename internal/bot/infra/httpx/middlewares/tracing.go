package middlewares

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jcmexdev/whatsapp-orders/internal/pkg/telemetry"
)

// Trace opens one span per request on the global tracer provider. The span
// lands in the context, so slog records and journal entries written further
// down pick up its trace_id/span_id automatically.
func Trace(next http.Handler) http.Handler {
	tracer := otel.Tracer("whatsapp-orders/httpx")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()

		if requestID := telemetry.RequestIDFromContext(ctx); requestID != "" {
			span.SetAttributes(attribute.String("request_id", requestID))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
