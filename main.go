package main

import (
	"log"
	"time"

	"restaurant-search/config"
	httpapi "restaurant-search/internal/api/http"
	"restaurant-search/internal/service"
	"restaurant-search/internal/storage"
)

const cacheTTL = time.Minute

func main() {
	cfg := config.Load()

	// Database creation is best-effort; table creation and seeding are not.
	storage.EnsureDatabase(cfg)

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	if err := storage.EnsureTables(db); err != nil {
		log.Fatal("Failed to ensure tables:", err)
	}

	if err := storage.NewSeeder(db).Run(); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	var cache service.ResultCache
	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg)
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, cacheTTL)
	}

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg, "orders")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	repo := storage.NewPostgresRepository(db)
	catalog := service.NewCatalogService(repo, cache)
	orders := service.NewOrderService(repo, cache, publisher,
		service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})

	handler := httpapi.NewHandler(catalog, orders)
	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}
