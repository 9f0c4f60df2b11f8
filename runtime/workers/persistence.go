package workers

import (
	"context"
	"cooksync/contract"
	"cooksync/domain/event"
	"log/slog"
)

// Ensure *PersistenceWorker implements the contract.Worker interface at
// compile time.
var _ contract.Worker = (*PersistenceWorker)(nil)

// PersistenceWorker drains the coordinator's record feed into the disk
// sink as detached background work. Write failures are logged and
// swallowed: commands complete independently of persistence outcome, and
// in-memory state stays authoritative for the live session.
type PersistenceWorker struct {
	records <-chan event.Event
	sink    contract.EventSink
	log     *slog.Logger
}

func NewPersistenceWorker(records <-chan event.Event, sink contract.EventSink, log *slog.Logger) *PersistenceWorker {
	return &PersistenceWorker{records: records, sink: sink, log: log}
}

func (w *PersistenceWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping persistence worker")
			return ctx.Err()
		case record, ok := <-w.records:
			if !ok {
				w.log.Debug("Record channel is closed")
				return nil
			}
			if err := w.sink.Consume(ctx, record); err != nil {
				w.log.Error("Persistence write failed",
					"record", record.Type(),
					"error", err)
			}
		}
	}
}
