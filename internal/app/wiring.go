package app

import (
	"context"
	"fmt"
	"task-service/internal/audit"
	"task-service/internal/auth"
	"task-service/internal/config"
	httpserver "task-service/internal/http"
	"task-service/internal/rbac"
	"task-service/internal/rbac/presets"
	"task-service/internal/repository"
	"task-service/internal/repository/memory"
	"task-service/internal/repository/postgres"
	"task-service/internal/service"
	"task-service/pkg/metrics"

	"go.uber.org/zap"
)

const metricsNamespace = "task_service"

// InitializeService wires up all dependencies and returns a configured Service.
func InitializeService(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}

	store, err := newStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.Store.Seed {
		if err := repository.Seed(ctx, store, log.Named("seed")); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
	}

	m := metrics.New(metricsNamespace)

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.ExpiryDuration)
	auditLog := audit.NewLogger(log)

	server := httpserver.NewServer(&httpserver.ServerDependencies{
		Config:       cfg,
		Logger:       log,
		Metrics:      m,
		Checker:      rbac.MustNew(presets.TaskManagement()),
		TokenService: tokens,
		AuthService:  auth.NewService(store.Users(), tokens, auditLog, log, m),
		TaskService:  service.NewTaskService(store.Tasks(), auditLog, log, m),
		UserService:  service.NewUserService(store.Users(), auditLog, log, m),
		Store:        store,
	})

	return &Service{
		config:      cfg,
		logger:      log,
		store:       store,
		metrics:     m,
		server:      server,
		stopMonitor: make(chan struct{}),
	}, nil
}

func newStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("using postgres store",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Database),
		)
		return db, nil
	case config.StoreDriverMemory:
		log.Info("using in-memory store")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
