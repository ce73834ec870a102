package ports

import (
	"context"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
)

// CatalogStore reads business metadata and the product catalog from the
// backing spreadsheet. Implementations must not cache: every call hits the
// store so the menu always reflects the sheet.
type CatalogStore interface {
	// GetBusinessConfig returns (nil, nil) when the BusinessConfig sheet has
	// no row — callers render a configuration-error reply in that case.
	GetBusinessConfig(ctx context.Context) (*entity.BusinessConfig, error)

	// GetActiveProducts returns only rows that are active and carry a
	// parsable price. May be empty.
	GetActiveProducts(ctx context.Context) ([]entity.Product, error)
}

// OrderStore appends confirmed orders to the backing spreadsheet.
// The append is atomic from the caller's point of view; no partial-write
// handling happens on this side of the port.
type OrderStore interface {
	AppendOrder(ctx context.Context, order *entity.Order) (string, error)
}
