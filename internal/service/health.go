package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"thesaurus/internal/domain"
	"thesaurus/internal/repository"
)

// HealthMonitor periodically probes the vocabulary store
type HealthMonitor struct {
	store       repository.VocabularyStore
	interval    time.Duration
	maxFailures int
	logger      *zap.Logger
}

// NewHealthMonitor creates a new health monitor
func NewHealthMonitor(store repository.VocabularyStore, interval time.Duration, maxFailures int, logger *zap.Logger) *HealthMonitor {
	return &HealthMonitor{
		store:       store,
		interval:    interval,
		maxFailures: maxFailures,
		logger:      logger,
	}
}

// Run probes the store every interval until ctx is done. It returns an
// error wrapping domain.ErrStoreUnavailable once maxFailures probes in a
// row have failed.
func (m *HealthMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Health monitor stopped")
			return nil
		case <-ticker.C:
			if m.store.IsHealthy(ctx) {
				if failures > 0 {
					m.logger.Info("Vocabulary store recovered", zap.Int("failed_checks", failures))
				}
				failures = 0
				continue
			}

			failures++
			m.logger.Warn("Vocabulary store health check failed",
				zap.Int("failures", failures),
				zap.Int("max_failures", m.maxFailures),
			)

			if failures >= m.maxFailures {
				return fmt.Errorf("%w: %d failed health checks", domain.ErrStoreUnavailable, failures)
			}
		}
	}
}
