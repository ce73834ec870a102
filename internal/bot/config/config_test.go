package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "")
	t.Setenv("JOURNAL_DB_PATH", "")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.SpreadsheetID)
	assert.Equal(t, "orders.db", cfg.JournalPath)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", `{"type":"service_account"}`)
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("PUBLIC_BASE_URL", "https://bot.example.com")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JOURNAL_DB_PATH", "/tmp/orders.db")

	cfg := FromEnv()

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "sheet-123", cfg.SpreadsheetID)
	assert.Equal(t, `{"type":"service_account"}`, cfg.ServiceAccountJSON)
	assert.Equal(t, "token", cfg.TwilioAuthToken)
	assert.Equal(t, "https://bot.example.com", cfg.PublicBaseURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "/tmp/orders.db", cfg.JournalPath)
}
