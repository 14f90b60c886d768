// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/infrastructure/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/redis"
	httpserver "github.com/your-org/storefront-backend/internal/interfaces/http"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
	"github.com/your-org/storefront-backend/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.WithFields(map[string]interface{}{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting storefront backend")

	// Redis is optional: it backs the catalog cache and rate limiter only.
	var redisClient *goredis.Client
	if cfg.UseRedis() {
		conn, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}
		redisClient = conn.GetClient()
		appLog.Info("Redis connection established")
	}

	// Catalog read path: upstream client behind a revalidation cache.
	var cache catalog.Cache
	switch cfg.Catalog.CacheBackend {
	case config.CacheBackendRedis:
		cache = catalog.NewRedisCache(redisClient, cfg.Catalog.CacheTTL)
	default:
		cache = catalog.NewMemoryCache(cfg.Catalog.CacheTTL)
	}
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.RequestTimeout, cache, appLog)

	// The three state slices, owned here and passed down explicitly.
	cartStore := cart.NewStore()
	checkoutStore := checkout.NewStore()
	orderStore := order.NewStore()

	deps := &routes.Deps{
		Config:   cfg,
		Logger:   appLog,
		Products: product.NewService(catalogClient),
		Cart:     cartStore,
		Checkout: checkoutStore,
		Workflow: checkout.NewService(cartStore, checkoutStore, orderStore, nil, nil),
		Orders:   orderStore,
		Redis:    redisClient,
	}

	server := httpserver.NewServer(cfg, deps)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLog.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	appLog.Info("Server shutdown completed")
}
