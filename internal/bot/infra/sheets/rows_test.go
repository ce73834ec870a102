package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
)

func TestParseConfigRow(t *testing.T) {
	cfg := parseConfigRow([]interface{}{"Taco Shop", "Pickup", "$", "12-22", "Av. Centro 1", "5"})

	assert.Equal(t, "Taco Shop", cfg.BusinessName)
	assert.Equal(t, entity.ModePickup, cfg.OrderMode)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, "12-22", cfg.Hours)
	assert.Equal(t, "Av. Centro 1", cfg.Address)
	assert.Equal(t, 5, cfg.MenuPageSize)
}

func TestParseConfigRowDefaults(t *testing.T) {
	// Short row: missing currency, hours, address and page size.
	cfg := parseConfigRow([]interface{}{"Taco Shop"})

	assert.Equal(t, entity.ModeUnknown, cfg.OrderMode)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, entity.DefaultMenuPageSize, cfg.MenuPageSize)
}

func TestParseConfigRowBadPageSize(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3"} {
		cfg := parseConfigRow([]interface{}{"Taco Shop", "both", "$", "", "", raw})
		assert.Equal(t, entity.DefaultMenuPageSize, cfg.MenuPageSize, "page size %q", raw)
	}
}

func TestParseProductRow(t *testing.T) {
	p, ok := parseProductRow([]interface{}{"p-1", " 2001 ", " Taco al pastor ", "2.5", "TRUE"})
	require.True(t, ok)

	assert.Equal(t, "p-1", p.ProductID)
	assert.Equal(t, "2001", p.Number)
	assert.Equal(t, "Taco al pastor", p.Name)
	assert.Equal(t, 2.5, p.Price)
	assert.True(t, p.Active)
}

func TestParseProductRowExclusions(t *testing.T) {
	cases := []struct {
		name string
		row  []interface{}
	}{
		{"short row", []interface{}{"p-1", "2001", "Taco"}},
		{"unparsable price", []interface{}{"p-1", "2001", "Taco", "cheap", "true"}},
		{"inactive", []interface{}{"p-1", "2001", "Taco", "2.5", "false"}},
		{"empty active", []interface{}{"p-1", "2001", "Taco", "2.5", ""}},
	}

	for _, tc := range cases {
		_, ok := parseProductRow(tc.row)
		assert.False(t, ok, tc.name)
	}
}
