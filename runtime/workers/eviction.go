package workers

import (
	"context"
	"cooksync/contract"
	"log/slog"
	"time"
)

var _ contract.Worker = (*EvictionWorker)(nil)

// Evictor is the slice of the coordinator the eviction worker needs.
type Evictor interface {
	EvictEnded(olderThan time.Time)
}

// EvictionWorker periodically asks the coordinator to drop terminal
// sessions that ended more than ttl ago. Ended sessions otherwise stay
// in the store forever; the table is in-memory only, so this is the
// garbage collection of the subsystem.
type EvictionWorker struct {
	evictor  Evictor
	ttl      time.Duration
	interval time.Duration
	log      *slog.Logger
}

func NewEvictionWorker(evictor Evictor, ttl, interval time.Duration, log *slog.Logger) *EvictionWorker {
	return &EvictionWorker{evictor: evictor, ttl: ttl, interval: interval, log: log}
}

func (w *EvictionWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping eviction worker")
			return ctx.Err()
		case <-ticker.C:
			w.evictor.EvictEnded(time.Now().UTC().Add(-w.ttl))
		}
	}
}
