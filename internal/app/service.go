package app

import (
	"context"
	"task-service/pkg/logger"
	"time"

	"go.uber.org/zap"
)

const (
	storeCheckInterval = time.Minute
	storeCheckTimeout  = 5 * time.Second
	limiterIdleTimeout = 10 * time.Minute
)

// Start runs the store monitor and blocks serving HTTP until Shutdown.
func (s *Service) Start() error {
	go s.monitorStore()

	addr := s.config.Server.Address()
	s.logger.Info("starting task service", zap.String("address", addr), zap.String("store", s.config.Store.Driver))
	return s.server.Start(addr)
}

// monitorStore pings the store periodically so an outage shows up in the
// logs before the first failing request does. The same tick drops idle
// rate limiters.
func (s *Service) monitorStore() {
	ticker := time.NewTicker(storeCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopMonitor:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), storeCheckTimeout)
			if err := s.store.Ping(ctx); err != nil {
				s.logger.Warn("store unreachable", logger.Error(err))
			}
			cancel()

			if n := s.server.PruneRateLimiters(limiterIdleTimeout); n > 0 {
				s.logger.Debug("pruned idle rate limiters", zap.Int("count", n))
			}
		}
	}
}

// Shutdown stops the HTTP server, then releases the store.
func (s *Service) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopMonitor) })

	err := s.server.Shutdown(ctx)
	s.store.Close()
	return err
}
