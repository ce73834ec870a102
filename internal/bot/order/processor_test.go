package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
)

type mockOrderStore struct {
	appended []*entity.Order
	err      error
}

func (m *mockOrderStore) AppendOrder(ctx context.Context, order *entity.Order) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.appended = append(m.appended, order)
	return order.ID, nil
}

var catalog = []entity.Product{
	{ProductID: "p-1", Number: "2001", Name: "Taco", Price: 9.5, Active: true},
	{ProductID: "p-2", Number: "02", Name: "Refresco", Price: 1.5, Active: true},
}

func TestProcessInvalidQuantity(t *testing.T) {
	p := NewProcessor(&mockOrderStore{}, nil)

	for _, qty := range []int{0, -1, -100} {
		_, err := p.Process(context.Background(), "wa:123", entity.OrderCommand{NumberToken: "2001", Quantity: qty}, catalog)
		assert.ErrorIs(t, err, entity.ErrInvalidQuantity, "quantity %d", qty)
	}
}

func TestProcessInvalidQuantityWinsOverUnknownProduct(t *testing.T) {
	p := NewProcessor(&mockOrderStore{}, nil)

	// Validation order is fixed: the quantity check runs before the lookup.
	_, err := p.Process(context.Background(), "wa:123", entity.OrderCommand{NumberToken: "9999", Quantity: 0}, catalog)
	assert.ErrorIs(t, err, entity.ErrInvalidQuantity)
}

func TestProcessProductNotFound(t *testing.T) {
	store := &mockOrderStore{}
	p := NewProcessor(store, nil)

	_, err := p.Process(context.Background(), "wa:123", entity.OrderCommand{NumberToken: "9999", Quantity: 2}, catalog)
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
	assert.Empty(t, store.appended)
}

func TestProcessNumberTokenIsNotCoerced(t *testing.T) {
	p := NewProcessor(&mockOrderStore{}, nil)

	// "2" must not match the product numbered "02".
	_, err := p.Process(context.Background(), "wa:123", entity.OrderCommand{NumberToken: "2", Quantity: 1}, catalog)
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestProcessSuccess(t *testing.T) {
	store := &mockOrderStore{}
	p := NewProcessor(store, nil)

	o, err := p.Process(context.Background(), "whatsapp:+5215512345678", entity.OrderCommand{NumberToken: "2001", Quantity: 2}, catalog)
	require.NoError(t, err)

	assert.Equal(t, 19.0, o.Total)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "p-1", o.Items[0].ProductID)
	assert.Equal(t, "Taco", o.Items[0].Name)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, 9.5, o.Items[0].UnitPrice)
	assert.Equal(t, entity.StatusNew, o.Status)
	assert.Equal(t, "whatsapp:+5215512345678", o.Phone)
	assert.NotEmpty(t, o.ID)
	assert.False(t, o.CreatedAt.IsZero())

	require.Len(t, store.appended, 1)
	assert.Same(t, o, store.appended[0])
}

func TestProcessStoreFailure(t *testing.T) {
	storeErr := errors.New("sheet unavailable")
	p := NewProcessor(&mockOrderStore{err: storeErr}, nil)

	_, err := p.Process(context.Background(), "wa:123", entity.OrderCommand{NumberToken: "2001", Quantity: 1}, catalog)
	assert.ErrorIs(t, err, storeErr)
}

func TestProcessEmptyCatalog(t *testing.T) {
	p := NewProcessor(&mockOrderStore{}, nil)

	_, err := p.Process(context.Background(), "wa:123", entity.OrderCommand{NumberToken: "2001", Quantity: 1}, nil)
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}
