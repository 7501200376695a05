package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"cartsession-api/internal/config"
	"cartsession-api/internal/db"
	"cartsession-api/internal/httpserver"
	couponrepo "cartsession-api/internal/repository/coupon"
	customerrepo "cartsession-api/internal/repository/customer"
	"cartsession-api/internal/repository/persistentcart"
	productrepo "cartsession-api/internal/repository/product"
	sessrepo "cartsession-api/internal/repository/session"
	sessionsvc "cartsession-api/internal/service/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	markers := persistentcart.NewNoop()
	if cfg.PersistentCartEnabled && cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		markers = persistentcart.NewRedis(rdb)
	}

	sessionRepo := sessrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	couponRepo := couponrepo.NewPostgres(dbpool)

	sessionService := sessionsvc.New(
		sessionRepo,
		productRepo,
		customerRepo,
		couponRepo,
		markers,
		sessionsvc.Settings{
			TaxDisplayMode:        cfg.TaxDisplayMode,
			WeightUnit:            cfg.WeightUnit,
			DimensionUnit:         cfg.DimensionUnit,
			PriceDecimals:         int32(cfg.PriceDecimals),
			CurrencySymbol:        cfg.CurrencySymbol,
			CouponsEnabled:        cfg.CouponsEnabled,
			PersistentCartEnabled: cfg.PersistentCartEnabled,
			APIBase:               cfg.APIBase,
		},
		nil,
		logger,
	)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		SessionSvc:         sessionService,
		AccessToken:        cfg.AccessToken,
		RequireAccessToken: cfg.RequireAccessToken,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
