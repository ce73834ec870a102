package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/ports"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/intent"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/order"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/reply"
	"github.com/jcmexdev/whatsapp-orders/internal/pkg/cache"
)

// dedupTTL is how long a Twilio MessageSid is remembered. Twilio retries
// webhooks for far less than a day.
const dedupTTL = 24 * time.Hour

// Handler handles incoming Twilio webhook requests and drives the
// classify → resolve → append flow.
type Handler struct {
	catalog   ports.CatalogStore
	processor *order.Processor
	dedup     cache.Cache // nil-safe: dedup skipped if nil
}

// NewHandler initializes the handler with its catalog store and order
// processor. dedup may be nil — in that case webhook redeliveries are
// processed again (harmless apart from duplicate rows).
func NewHandler(catalog ports.CatalogStore, processor *order.Processor, dedup cache.Cache) *Handler {
	return &Handler{
		catalog:   catalog,
		processor: processor,
		dedup:     dedup,
	}
}

// Webhook consumes one inbound WhatsApp message and always answers a TwiML
// envelope: every branch, including every failure, terminates in a rendered
// reply. Twilio shows a raw error to the user otherwise.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	body := r.PostFormValue("Body")
	phone := r.PostFormValue("From")
	messageSid := r.PostFormValue("MessageSid")

	if h.seenBefore(ctx, messageSid) {
		slog.InfoContext(ctx, "duplicate webhook suppressed", "message_sid", messageSid)
		writeTwiML(w, "")
		return
	}

	// Config is loaded before intent dispatch, so a missing BusinessConfig
	// row answers every message with the configuration error.
	cfg, err := h.catalog.GetBusinessConfig(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "business config read failed", "error", err)
	}
	if cfg == nil {
		writeTwiML(w, reply.MsgConfigError)
		return
	}

	text := h.dispatch(r, cfg, intent.Classify(body), phone)
	h.markSeen(ctx, messageSid)
	writeTwiML(w, text)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) dispatch(r *http.Request, cfg *entity.BusinessConfig, in intent.Intent, phone string) string {
	ctx := r.Context()

	switch in.Kind {
	case intent.KindMenuRequest:
		products, err := h.catalog.GetActiveProducts(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "catalog read failed", "error", err)
			return reply.MsgProcessingError
		}
		if len(products) == 0 {
			return reply.MsgEmptyCatalog
		}
		return reply.Menu(cfg, products)

	case intent.KindOrder:
		products, err := h.catalog.GetActiveProducts(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "catalog read failed", "error", err)
			return reply.MsgProcessingError
		}

		o, err := h.processor.Process(ctx, phone, in.Command, products)
		switch {
		case errors.Is(err, entity.ErrInvalidQuantity):
			return reply.MsgInvalidQuantity
		case errors.Is(err, entity.ErrProductNotFound):
			return reply.MsgProductNotFound
		case err != nil:
			slog.ErrorContext(ctx, "order processing failed", "phone", phone, "error", err)
			return reply.MsgProcessingError
		}

		slog.InfoContext(ctx, "order received", "order_id", o.ID, "total", o.Total)
		return reply.Confirmation(cfg, o)

	case intent.KindFormatError:
		return reply.MsgInvalidFormat

	default:
		return reply.MsgFallback
	}
}

// seenBefore reports whether this MessageSid was already processed. Cache
// errors degrade to "not seen" so a Redis outage never blocks orders.
func (h *Handler) seenBefore(ctx context.Context, messageSid string) bool {
	if h.dedup == nil || messageSid == "" {
		return false
	}
	got, err := h.dedup.Get(ctx, h.dedup.GenerateKey("webhook", messageSid))
	if err != nil {
		slog.WarnContext(ctx, "dedup lookup failed", "message_sid", messageSid, "error", err)
		return false
	}
	return got != ""
}

func (h *Handler) markSeen(ctx context.Context, messageSid string) {
	if h.dedup == nil || messageSid == "" {
		return
	}
	key := h.dedup.GenerateKey("webhook", messageSid)
	if err := h.dedup.Set(ctx, key, "1", dedupTTL); err != nil {
		slog.WarnContext(ctx, "dedup store failed", "message_sid", messageSid, "error", err)
	}
}
