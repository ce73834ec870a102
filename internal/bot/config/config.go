// Package config builds the explicit configuration struct the rest of the
// service is wired with. The environment is read exactly once, in main;
// request-time code never touches it.
package config

import "os"

type Config struct {
	// HTTPAddr is the listen address of the webhook server.
	HTTPAddr string

	// SpreadsheetID identifies the Google Sheets document holding the
	// BusinessConfig, Products and Orders sheets. Empty means the in-memory
	// fake stores are used (local development).
	SpreadsheetID string

	// ServiceAccountJSON is the raw Google service-account credentials JSON.
	ServiceAccountJSON string

	// TwilioAuthToken enables X-Twilio-Signature validation when non-empty.
	TwilioAuthToken string

	// PublicBaseURL is the externally visible URL Twilio signs requests
	// against, e.g. "https://bot.example.com". Required when signature
	// validation is on.
	PublicBaseURL string

	// RedisAddr enables webhook dedup when non-empty.
	RedisAddr string

	// JournalPath is the SQLite order-journal file. Empty disables the journal.
	JournalPath string
}

// FromEnv reads the process environment into a Config.
func FromEnv() Config {
	return Config{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		SpreadsheetID:      os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"),
		ServiceAccountJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		PublicBaseURL:      os.Getenv("PUBLIC_BASE_URL"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		JournalPath:        getEnv("JOURNAL_DB_PATH", "orders.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
