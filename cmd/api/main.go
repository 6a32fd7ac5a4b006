package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mannyautos/storefront-backend/api/controllers"
	"github.com/mannyautos/storefront-backend/api/routes"
	cartsvc "github.com/mannyautos/storefront-backend/internal/cart"
	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/internal/orders"
	"github.com/mannyautos/storefront-backend/pkg/config"
	"github.com/mannyautos/storefront-backend/pkg/logger"
	"github.com/mannyautos/storefront-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	cat, err := catalog.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog seed", err)
		os.Exit(1)
	}
	repo, err := catalog.NewRepository(cat)
	if err != nil {
		logg.Error(context.Background(), "failed to index catalog", err)
		os.Exit(1)
	}
	tax, err := catalog.LoadTaxonomy()
	if err != nil {
		logg.Error(context.Background(), "failed to load vehicle taxonomy", err)
		os.Exit(1)
	}

	var (
		cartStore  cartsvc.Store
		cartPinger controllers.Pinger
	)
	if cfg.Redis.Configured() {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		primary, err := cartsvc.NewRedisStore(redisClient, cfg.Cart.TTL)
		if err != nil {
			logg.Error(context.Background(), "failed to build cart store", err)
			os.Exit(1)
		}
		cartStore = cartsvc.NewDegradingStore(primary, logg)
		cartPinger = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, carts held in memory")
		cartStore = cartsvc.NewMemoryStore()
	}

	cartService, err := cartsvc.NewService(cartStore, repo, cfg.Cart.MaxQuantity)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	handoff := orders.NewHandoff(cfg.WhatsApp.Destination)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":             cfg.App.Env,
		"addr":            addr,
		"catalog_version": repo.Version(),
		"parts":           repo.Len(),
	})
	logg.Info(ctx, "starting storefront api")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, cartPinger, repo, tax, cartService, handoff, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
