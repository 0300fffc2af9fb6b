package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/dgsoftwash/booking-api/internal/auth"
	"github.com/dgsoftwash/booking-api/internal/cache"
	"github.com/dgsoftwash/booking-api/internal/config"
	dbpkg "github.com/dgsoftwash/booking-api/internal/db"
	infraRepo "github.com/dgsoftwash/booking-api/internal/infra/repository"
	"github.com/dgsoftwash/booking-api/internal/metrics"
	"github.com/dgsoftwash/booking-api/internal/notify"
	"github.com/dgsoftwash/booking-api/internal/routes"
	ucPricing "github.com/dgsoftwash/booking-api/internal/usecase/pricing"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	dbpkg.Seed(db)

	// Redis backs the catalog cache and admin sessions when
	// configured. Without it everything runs in-process, which is
	// fine for a single instance.
	var (
		tokens       auth.TokenStore
		catalogCache ucPricing.Cache
	)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		tokens = auth.NewRedisTokenStore(client)
		catalogCache = cache.NewRedisCatalogCache(client, cfg.PricingCacheTTL)
	} else {
		tokens = auth.NewMemoryTokenStore()
		catalogCache = cache.NewMemoryCatalogCache(cfg.PricingCacheTTL)
	}

	var sender notify.Sender = notify.LogSender{}
	if cfg.SMTPHost != "" {
		sender = notify.NewSMTPSender(cfg)
	}

	pricingRepo := infraRepo.NewPricingGormRepository(db)
	sweepUC := ucPricing.NewSweep(pricingRepo, catalogCache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sweepUC.Run(ctx, cfg.SweepInterval, func(n int) {
		metrics.SweepApplied.Add(float64(n))
	})

	r := gin.Default()

	routes.RegisterRoutes(r, db, cfg, tokens, catalogCache, sender)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
