package sheets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
)

// parseConfigRow maps the BusinessConfig row
// (name, order_mode, currency, hours, address, menu_page_size) to the entity.
// Short rows are padded; missing currency falls back to "$" and a missing or
// unparsable page size falls back to the default.
func parseConfigRow(row []interface{}) entity.BusinessConfig {
	for len(row) < 6 {
		row = append(row, "")
	}

	pageSize := entity.DefaultMenuPageSize
	if raw := cellString(row, 5); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			pageSize = n
		}
	}

	currency := cellString(row, 2)
	if currency == "" {
		currency = "$"
	}

	return entity.BusinessConfig{
		BusinessName:   cellString(row, 0),
		OrderMode:      entity.ParseOrderMode(strings.ToLower(cellString(row, 1))),
		CurrencySymbol: currency,
		Hours:          cellString(row, 3),
		Address:        cellString(row, 4),
		MenuPageSize:   pageSize,
	}
}

// parseProductRow maps one Products row
// (product_id, number, name, price, active, keywords, unit, featured).
// Rows with fewer than five cells, an unparsable price, or active != "true"
// are excluded entirely — they are neither shown nor orderable.
func parseProductRow(row []interface{}) (entity.Product, bool) {
	if len(row) < 5 {
		return entity.Product{}, false
	}

	price, err := strconv.ParseFloat(cellString(row, 3), 64)
	if err != nil {
		return entity.Product{}, false
	}

	if !strings.EqualFold(cellString(row, 4), "true") {
		return entity.Product{}, false
	}

	return entity.Product{
		ProductID: cellString(row, 0),
		Number:    cellString(row, 1),
		Name:      cellString(row, 2),
		Price:     price,
		Active:    true,
	}, true
}

// cellString renders the i-th cell as a trimmed string. The Sheets API hands
// cells back as interface{} values.
func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}
