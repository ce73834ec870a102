package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jcmexdev/whatsapp-orders/internal/bot/config"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/core/ports"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/infra/adapters/service"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/infra/httpx"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/infra/sheets"
	"github.com/jcmexdev/whatsapp-orders/internal/bot/order"
	"github.com/jcmexdev/whatsapp-orders/internal/journal"
	journalsqlite "github.com/jcmexdev/whatsapp-orders/internal/journal/sqlite"
	"github.com/jcmexdev/whatsapp-orders/internal/pkg/cache"
	"github.com/jcmexdev/whatsapp-orders/internal/pkg/telemetry"
)

const serviceName = "whatsapp-orders"

func main() {
	ctx := context.Background()
	cfg := config.FromEnv()

	telemetry.InitLogger()

	shutdown, err := telemetry.SetupTracer(ctx, serviceName)
	if err != nil {
		log.Fatalf("tracer setup failed: %v", err)
	}
	defer shutdown(context.Background())

	var catalogStore ports.CatalogStore
	var orderStore ports.OrderStore

	if cfg.SpreadsheetID != "" {
		store, err := sheets.New(ctx, cfg.SpreadsheetID, cfg.ServiceAccountJSON)
		if err != nil {
			log.Fatalf("sheets store setup failed: %v", err)
		}
		catalogStore, orderStore = store, store
	} else {
		log.Printf("GOOGLE_SHEETS_SPREADSHEET_ID not set, using in-memory fake stores")
		fake := service.NewFakeStore()
		catalogStore, orderStore = fake, fake
	}

	var journalRepo journal.Repository
	if cfg.JournalPath != "" {
		repo, err := journalsqlite.Open(cfg.JournalPath)
		if err != nil {
			log.Fatalf("order journal setup failed: %v", err)
		}
		defer repo.Close()
		journalRepo = repo
	}

	var dedup cache.Cache
	if cfg.RedisAddr != "" {
		dedup = cache.NewRedisCache(cfg.RedisAddr, serviceName)
	}

	processor := order.NewProcessor(orderStore, journalRepo)
	handler := httpx.NewHandler(catalogStore, processor, dedup)
	router := httpx.NewRouter(handler, cfg.TwilioAuthToken, cfg.PublicBaseURL)

	log.Printf("WhatsApp order bot running on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}
