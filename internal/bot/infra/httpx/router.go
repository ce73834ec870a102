package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/infra/httpx/middlewares"
)

// NewRouter assembles the webhook server. Signature validation is mounted
// only when an auth token is configured; the health endpoint stays outside
// that group so probes don't need signed requests.
func NewRouter(handler *Handler, twilioAuthToken, publicBaseURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.RequestID)
	r.Use(middlewares.Trace)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	r.Group(func(g chi.Router) {
		if twilioAuthToken != "" {
			g.Use(middlewares.ValidateTwilioSignature(twilioAuthToken, publicBaseURL))
		}
		g.Post("/webhook/twilio", handler.Webhook)
	})

	return r
}
