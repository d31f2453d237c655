package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/api"
	"github.com/webshop/storefront/internal/config"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := api.NewStore(api.SeedProducts(cfg.SeedProducts))
	server := api.New(store, logger)

	logger.Info("api server listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.Int("products", cfg.SeedProducts),
	)
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}
	logger.Info("api server stopped")
}
