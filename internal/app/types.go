package app

import (
	"sync"
	"task-service/internal/config"
	httpserver "task-service/internal/http"
	"task-service/internal/repository"
	"task-service/pkg/metrics"

	"go.uber.org/zap"
)

// Service is the assembled task service: configuration, store and HTTP server.
type Service struct {
	config  *config.Config
	logger  *zap.Logger
	store   repository.Store
	metrics *metrics.Metrics
	server  *httpserver.Server

	stopMonitor chan struct{}
	stopOnce    sync.Once
}
