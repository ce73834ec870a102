// Package order resolves a parsed order command against the catalog, prices
// it, and appends the resulting order to the order store.
package order

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/ports"
	"github.com/jcmexdev/whatsapp-orders/internal/journal"
)

type Processor struct {
	store   ports.OrderStore
	journal journal.Repository // nil-safe: journaling skipped if nil
}

// NewProcessor wires the processor with its order store. jr may be nil — in
// that case submission attempts are not journaled.
func NewProcessor(store ports.OrderStore, jr journal.Repository) *Processor {
	return &Processor{store: store, journal: jr}
}

// Process validates the command against the catalog and, on success, builds
// the order and appends it to the store. Validation order is fixed and the
// first failure wins:
//
//  1. quantity <= 0            -> entity.ErrInvalidQuantity
//  2. no matching number token -> entity.ErrProductNotFound
//
// The number token is matched with an exact string comparison — "2" and "02"
// are different products.
func (p *Processor) Process(ctx context.Context, phone string, cmd entity.OrderCommand, catalog []entity.Product) (*entity.Order, error) {
	if cmd.Quantity <= 0 {
		return nil, entity.ErrInvalidQuantity
	}

	var selected *entity.Product
	for i := range catalog {
		if catalog[i].Number == cmd.NumberToken {
			selected = &catalog[i]
			break
		}
	}
	if selected == nil {
		return nil, entity.ErrProductNotFound
	}

	now := time.Now().UTC()
	order := &entity.Order{
		// Unix seconds as the order ID keeps the MVP simple but is NOT unique
		// when two orders land within the same second. Known limitation; a
		// store-assigned sequence or random token would replace this.
		ID:    strconv.FormatInt(now.Unix(), 10),
		Phone: phone,
		Items: []entity.OrderLineItem{
			{
				ProductID: selected.ProductID,
				Name:      selected.Name,
				Quantity:  cmd.Quantity,
				UnitPrice: selected.Price,
			},
		},
		Total:     selected.Price * float64(cmd.Quantity),
		Status:    entity.StatusNew,
		CreatedAt: now,
	}

	if _, err := p.store.AppendOrder(ctx, order); err != nil {
		p.record(ctx, order, journal.OutcomeStoreFailed)
		return nil, fmt.Errorf("append order %s: %w", order.ID, err)
	}

	p.record(ctx, order, journal.OutcomeReceived)
	return order, nil
}

// record journals the submission attempt. Best-effort: a journal failure is
// logged and never surfaces to the user.
func (p *Processor) record(ctx context.Context, order *entity.Order, outcome journal.Outcome) {
	if p.journal == nil {
		return
	}
	if err := p.journal.Save(ctx, journal.NewEntry(ctx, order, outcome)); err != nil {
		slog.ErrorContext(ctx, "journal save failed", "order_id", order.ID, "error", err)
	}
}
