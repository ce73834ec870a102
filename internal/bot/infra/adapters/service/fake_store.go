package service

import (
	"context"
	"sync"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/ports"
)

// Ensure fakeStore implements both ports at compile time.
var (
	_ ports.CatalogStore = (*fakeStore)(nil)
	_ ports.OrderStore   = (*fakeStore)(nil)
)

// fakeStore is an in-memory implementation of the catalog and order ports
// intended for local development and manual testing only. Do NOT use in
// production.
type fakeStore struct {
	config   *entity.BusinessConfig
	products []entity.Product

	mu     sync.Mutex
	orders []*entity.Order
}

// NewFakeStore returns an in-memory store seeded with a small demo menu.
func NewFakeStore() *fakeStore {
	return &fakeStore{
		config: &entity.BusinessConfig{
			BusinessName:   "Demo Taquería",
			OrderMode:      entity.ModePickup,
			CurrencySymbol: "$",
			Hours:          "12:00-22:00",
			MenuPageSize:   entity.DefaultMenuPageSize,
		},
		products: []entity.Product{
			{ProductID: "p-2001", Number: "2001", Name: "Taco al pastor", Price: 2.5, Active: true},
			{ProductID: "p-2002", Number: "2002", Name: "Quesadilla", Price: 3, Active: true},
			{ProductID: "p-2003", Number: "2003", Name: "Agua de horchata", Price: 1.5, Active: true},
		},
	}
}

func (f *fakeStore) GetBusinessConfig(ctx context.Context) (*entity.BusinessConfig, error) {
	cfg := *f.config
	return &cfg, nil
}

func (f *fakeStore) GetActiveProducts(ctx context.Context) ([]entity.Product, error) {
	return append([]entity.Product(nil), f.products...), nil
}

func (f *fakeStore) AppendOrder(ctx context.Context, order *entity.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order)
	return order.ID, nil
}
