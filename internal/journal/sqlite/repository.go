// Package sqlite provides a SQLite-backed implementation of journal.Repository.
//
// WAL mode is enabled on Open so that readers never block writers and vice
// versa — the webhook handler writes while an operator may be querying the
// journal from the shell.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/whatsapp-orders/internal/journal"

	// Register the pure-Go SQLite driver.
	// modernc.org/sqlite avoids CGO, keeping Docker (Alpine) builds simple.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup.
// The table is append-only: each row is an immutable record of one order
// submission attempt.
const schema = `
CREATE TABLE IF NOT EXISTS order_journal (
    -- Surrogate primary key — auto-incremented by SQLite.
    id          INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Timestamp-derived order ID, shared with the Orders sheet.
    -- Not UNIQUE: same-second orders collide, and a failed append followed by
    -- a successful resend legitimately repeats the ID.
    order_id    TEXT    NOT NULL,

    -- WhatsApp identifier the order came from.
    phone       TEXT    NOT NULL,

    -- RECEIVED or STORE_FAILED.
    outcome     TEXT    NOT NULL,

    -- JSON array of line items, same shape as the spreadsheet cell.
    payload     TEXT    NOT NULL DEFAULT '[]',

    -- Computed order total.
    total       REAL    NOT NULL DEFAULT 0,

    -- W3C trace_id (32 hex chars) from the active OTel span.
    trace_id    TEXT    NOT NULL DEFAULT '',

    -- W3C span_id (16 hex chars) — pinpoints the exact request in the trace.
    span_id     TEXT    NOT NULL DEFAULT '',

    -- Wall-clock timestamp (RFC3339 stored as TEXT, SQLite idiom).
    created_at  TEXT    NOT NULL
);

-- Index for the most common query: "show me order X's attempts in order".
CREATE INDEX IF NOT EXISTS idx_order_journal_order_id ON order_journal(order_id, created_at);

-- Index for the observability query: "find the order for trace Y".
CREATE INDEX IF NOT EXISTS idx_order_journal_trace_id ON order_journal(trace_id);
`

// Repository is the SQLite implementation of journal.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema. WAL mode is enabled for better concurrent read/write behavior.
//
//	repo, err := sqlite.Open("./data/orders.db")
func Open(path string) (*Repository, error) {
	// The pure-Go driver uses _pragma query parameters to configure
	// connection state. busy_timeout waits for locks instead of failing.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts a new journal entry. It is safe to call concurrently.
func (r *Repository) Save(ctx context.Context, entry *journal.Entry) error {
	const q = `
		INSERT INTO order_journal
			(order_id, phone, outcome, payload, total, trace_id, span_id, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.OrderID,
		entry.Phone,
		string(entry.Outcome),
		entry.Payload,
		entry.Total,
		entry.TraceID,
		entry.SpanID,
		entry.CreatedAt.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save journal entry for %q: %w", entry.OrderID, err)
	}
	return nil
}

// GetLatest returns the most recent journal entry for a given order ID.
// Useful when reconciling the journal against the Orders sheet.
func (r *Repository) GetLatest(ctx context.Context, orderID string) (*journal.Entry, error) {
	const q = `
		SELECT order_id, phone, outcome, payload, total, trace_id, span_id, created_at
		FROM   order_journal
		WHERE  order_id = ?
		ORDER  BY created_at DESC, id DESC
		LIMIT  1`

	row := r.db.QueryRowContext(ctx, q, orderID)

	var entry journal.Entry
	var createdAt string
	err := row.Scan(
		&entry.OrderID,
		&entry.Phone,
		&entry.Outcome,
		&entry.Payload,
		&entry.Total,
		&entry.TraceID,
		&entry.SpanID,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite: order %q not found", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get latest for %q: %w", orderID, err)
	}

	entry.CreatedAt, err = parseRFC3339(createdAt)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// applySchema runs the DDL statements once. Idempotent due to IF NOT EXISTS.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}
