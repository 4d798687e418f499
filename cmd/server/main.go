package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/config"
	"github.com/hongminglow/devcamper-be/internal/server"
	"github.com/hongminglow/devcamper-be/internal/storage"
	"github.com/hongminglow/devcamper-be/internal/storage/memory"
	"github.com/hongminglow/devcamper-be/internal/storage/postgres"
)

func main() {
	os.Exit(run())
}

func run() int {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Printf("init logger: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("no .env file found; relying on existing environment")
	}

	store, err := openStore(context.Background(), cfg)
	if err != nil {
		logger.Error("init storage", zap.String("storage", cfg.Storage), zap.Error(err))
		return 1
	}
	defer store.Close()

	srv := server.New(cfg, store, logger)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("devcamper backend listening",
			zap.String("addr", cfg.HTTPAddress()),
			zap.String("env", cfg.Env),
			zap.String("storage", cfg.Storage),
		)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	code := 0
	select {
	case sig := <-sigCh:
		logger.Info("shutdown requested", zap.String("signal", sig.String()))
	case err := <-srv.Fatal():
		logger.Error("fatal handler failure; shutting down", zap.Error(err))
		code = 1
	case err := <-serveErr:
		logger.Error("http server error", zap.Error(err))
		return 1
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Warn("graceful shutdown error", zap.Error(err))
	}
	return code
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.Storage == config.StorageMemory {
		return memory.New(), nil
	}
	pg, err := postgres.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return pg, nil
}
