// Package sheets implements the catalog and order ports against a Google
// Sheets spreadsheet — the business edits its menu in a sheet, the bot reads
// it live and appends orders next to it.
//
// Nothing is cached: each webhook re-reads the sheet, so menu edits are
// visible immediately. Request volume is low enough that the redundant reads
// don't matter.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/domain/entity"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/ports"
)

// Sheet ranges, matching the spreadsheet layout the business maintains.
const (
	businessConfigRange = "BusinessConfig!A2:F2"
	productsRange       = "Products!A2:H"
	ordersAppendRange   = "Orders!A2"
)

// Ensure Store implements both ports at compile time.
var (
	_ ports.CatalogStore = (*Store)(nil)
	_ ports.OrderStore   = (*Store)(nil)
)

// Store reads BusinessConfig and Products and appends to Orders, all within
// one spreadsheet.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
}

// New builds a Store from the explicit configuration values; it never reads
// the environment itself.
func New(ctx context.Context, spreadsheetID, serviceAccountJSON string) (*Store, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet ID is required")
	}
	if serviceAccountJSON == "" {
		return nil, fmt.Errorf("sheets: service account credentials are required")
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(serviceAccountJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// GetBusinessConfig reads the single BusinessConfig row. Returns (nil, nil)
// when the sheet has no row — the caller renders the configuration-error
// reply for that.
func (s *Store) GetBusinessConfig(ctx context.Context) (*entity.BusinessConfig, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, businessConfigRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read business config: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, nil
	}

	cfg := parseConfigRow(resp.Values[0])
	return &cfg, nil
}

// GetActiveProducts reads the Products sheet and returns only rows that are
// active and carry a parsable price.
func (s *Store) GetActiveProducts(ctx context.Context) ([]entity.Product, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, productsRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read products: %w", err)
	}

	products := make([]entity.Product, 0, len(resp.Values))
	for _, row := range resp.Values {
		if p, ok := parseProductRow(row); ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// AppendOrder appends one row to the Orders sheet:
// [order_id, phone, items JSON, total, status, order_type, address, created_at].
func (s *Store) AppendOrder(ctx context.Context, order *entity.Order) (string, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return "", fmt.Errorf("sheets: marshal order items: %w", err)
	}

	vr := &sheets.ValueRange{
		Values: [][]interface{}{{
			order.ID,
			order.Phone,
			string(items),
			order.Total,
			string(order.Status),
			order.OrderType,
			order.Address,
			order.CreatedAt.UTC().Format(time.RFC3339),
		}},
	}

	_, err = s.svc.Spreadsheets.Values.Append(s.spreadsheetID, ordersAppendRange, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("sheets: append order %s: %w", order.ID, err)
	}

	return order.ID, nil
}
