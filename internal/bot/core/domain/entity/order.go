package entity

import "time"

// OrderCommand is a parsed "<number> x <qty>" message.
type OrderCommand struct {
	NumberToken string
	Quantity    int
}

type OrderStatus string

const (
	// StatusNew is the only status this service ever writes; transitions
	// happen downstream, outside this codebase.
	StatusNew OrderStatus = "new"
)

type OrderLineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"qty"`
	UnitPrice float64 `json:"price"`
}

func (i OrderLineItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Order is a confirmed purchase, appended to the Orders sheet immediately
// after creation and never mutated here afterwards.
type Order struct {
	ID     string
	Phone  string
	Items  []OrderLineItem
	Total  float64
	Status OrderStatus
	// OrderType and Address are reserved for the pickup/delivery flow;
	// nothing populates them yet.
	OrderType string
	Address   string
	CreatedAt time.Time
}
