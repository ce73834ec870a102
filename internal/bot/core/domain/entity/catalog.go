package entity

// OrderMode describes how the business hands orders to customers.
type OrderMode string

const (
	ModePickup   OrderMode = "pickup"
	ModeDelivery OrderMode = "delivery"
	ModeBoth     OrderMode = "both"
	ModeUnknown  OrderMode = "unknown"
)

// ParseOrderMode maps the raw spreadsheet cell to a known mode.
func ParseOrderMode(raw string) OrderMode {
	switch OrderMode(raw) {
	case ModePickup, ModeDelivery, ModeBoth:
		return OrderMode(raw)
	default:
		return ModeUnknown
	}
}

// DefaultMenuPageSize is used when the BusinessConfig sheet carries no
// (or an unparsable) page size.
const DefaultMenuPageSize = 8

// BusinessConfig is the per-request snapshot of business metadata read from
// the BusinessConfig sheet. It is never cached and never mutated.
type BusinessConfig struct {
	BusinessName   string
	OrderMode      OrderMode
	CurrencySymbol string
	Hours          string
	Address        string
	// MenuPageSize is parsed and carried but no pagination is implemented yet.
	MenuPageSize int
}

// Product is one orderable row of the Products sheet. Number is the trimmed
// user-facing selector key ("2001" in "2001 x 2"); matching against it is an
// exact string comparison, never numeric.
type Product struct {
	ProductID string
	Number    string
	Name      string
	Price     float64
	Active    bool
}
