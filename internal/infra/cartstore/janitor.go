package cartstore

import (
	"context"
	"log/slog"
	"time"
)

const defaultPurgeInterval = 15 * time.Minute

// Purger drops expired entries. Redis expires keys itself and has no Purger.
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}

// Janitor purges expired carts on a fixed cadence.
type Janitor struct {
	purger   Purger
	interval time.Duration
	logger   *slog.Logger
}

func NewJanitor(purger Purger, interval time.Duration, logger *slog.Logger) *Janitor {
	if interval <= 0 {
		interval = defaultPurgeInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Janitor{purger: purger, interval: interval, logger: logger}
}

// Run purges once immediately, then every interval until ctx is canceled.
func (j *Janitor) Run(ctx context.Context) {
	j.purge(ctx)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *Janitor) purge(ctx context.Context) {
	n, err := j.purger.Purge(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Warn("cart purge failed", "error", err.Error())
		}
		return
	}
	if n > 0 {
		j.logger.Info("expired carts purged", "count", n)
	}
}
