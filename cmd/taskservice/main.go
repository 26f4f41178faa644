package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"task-service/internal/app"
	"task-service/internal/config"
	"task-service/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, err := app.InitializeService(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize service", logger.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- service.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			zl.Error("server stopped", logger.Error(err))
		}
	case <-ctx.Done():
		zl.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := service.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", logger.Error(err))
		os.Exit(1)
	}
	zl.Info("task service stopped")
}
