// Package journal defines the domain types for the local order journal.
//
// The journal is a durable audit trail of every order submission attempt.
// It serves two purposes:
//
//  1. Observability: you can query the DB to see every order that passed
//     through the bot and correlate it with a distributed trace via the
//     trace_id field.
//
//  2. Reconciliation: when a spreadsheet append fails, the failed attempt is
//     still journaled, so lost orders can be recovered by hand.
//
// The spreadsheet remains the system of record; the journal only observes.
package journal

import "time"

// Outcome represents how an order submission ended.
type Outcome string

const (
	OutcomeReceived    Outcome = "RECEIVED"
	OutcomeStoreFailed Outcome = "STORE_FAILED"
)

// Entry is a single row in the order_journal table, a point-in-time snapshot
// of one submission attempt.
type Entry struct {
	// OrderID is the timestamp-derived order identifier, shared with the
	// Orders sheet so the two can be joined.
	OrderID string

	// Phone is the WhatsApp identifier the order came from.
	Phone string

	// Outcome is how the submission ended.
	Outcome Outcome

	// Payload is the JSON-serialised line items, the same shape written to
	// the spreadsheet.
	Payload string

	// Total is the computed order total.
	Total float64

	// TraceID is the W3C trace ID extracted from the OpenTelemetry span that
	// was active when this entry was written. Allows jumping from a journal
	// row directly to the full trace.
	TraceID string

	// SpanID pinpoints the exact span within the trace.
	SpanID string

	// CreatedAt is the wall-clock time of this entry.
	CreatedAt time.Time
}
