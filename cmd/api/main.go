package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cute-storefront/internal/config"
	"cute-storefront/internal/gateway"
	"cute-storefront/internal/httpserver"
	cartsvc "cute-storefront/internal/service/cart"
	checkoutsvc "cute-storefront/internal/service/checkout"
	identitysvc "cute-storefront/internal/service/identity"
	"cute-storefront/internal/store"
	"cute-storefront/internal/wompi"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	rdb, err := store.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Fatalf("connect to store: %v", err)
	}
	defer rdb.Close()

	kv := store.NewRedis(rdb)
	commerce := gateway.New(cfg.APIBaseURL, logger)
	tokenization := wompi.New(cfg.WompiBaseURL, cfg.WompiPublicKey, logger)

	cartService := cartsvc.New(kv, logger)
	identityService := identitysvc.New(commerce, kv, logger)
	checkoutService := checkoutsvc.New(commerce, tokenization, cartService, cfg.RedirectURL, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, rdb, httpserver.Deps{
		Catalog:  commerce,
		Cart:     cartService,
		Checkout: checkoutService,
		Identity: identityService,
	}, cfg.CORSOrigin)
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
