package workers

import (
	"context"
	"time"

	"github.com/quyetcv1/coffee-shop/internal/logger"
)

// KeySetRefresher loads the signing keys at startup and reloads them every
// interval, so requests rarely wait for a download. A non-positive interval
// only performs the initial load.
type KeySetRefresher struct {
	keys     Refresher
	interval time.Duration
	logger   *logger.Logger
}

func NewKeySetRefresher(keys Refresher, interval time.Duration, logger *logger.Logger) *KeySetRefresher {
	return &KeySetRefresher{
		keys:     keys,
		interval: interval,
		logger:   logger,
	}
}

func (r *KeySetRefresher) Run(ctx context.Context) {
	r.refresh(ctx)

	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug().Msg("key set refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *KeySetRefresher) refresh(ctx context.Context) {
	if err := r.keys.Refresh(r.logger.WithContext(ctx)); err != nil {
		// requests retry the download on demand
		r.logger.Warn().Err(err).Msg("error refreshing key set")
	}
}
