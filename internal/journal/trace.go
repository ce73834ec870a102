package journal

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
)

// TraceInfo holds the OTel identifiers extracted from a context.
type TraceInfo struct {
	// TraceID is the W3C trace ID (32 lowercase hex chars).
	// Empty string if no active span is found in the context.
	TraceID string

	// SpanID is the W3C span ID (16 lowercase hex chars).
	SpanID string
}

// ExtractTraceInfo reads the active OpenTelemetry span from ctx and returns
// its trace_id and span_id as hex strings. If the context carries no active
// span (e.g. in unit tests), both fields come back empty.
func ExtractTraceInfo(ctx context.Context) TraceInfo {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return TraceInfo{}
	}

	return TraceInfo{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}
}

// NewEntry builds a journal entry for an order, with the trace info
// automatically extracted from ctx.
//
// Usage in the webhook handler:
//
//	entry := journal.NewEntry(ctx, order, journal.OutcomeReceived)
//	_ = repo.Save(ctx, entry)
func NewEntry(ctx context.Context, order *entity.Order, outcome Outcome) *Entry {
	ti := ExtractTraceInfo(ctx)

	payload := "[]"
	if b, err := json.Marshal(order.Items); err == nil {
		payload = string(b)
	}

	return &Entry{
		OrderID:   order.ID,
		Phone:     order.Phone,
		Outcome:   outcome,
		Payload:   payload,
		Total:     order.Total,
		TraceID:   ti.TraceID,
		SpanID:    ti.SpanID,
		CreatedAt: time.Now().UTC(),
	}
}
