// Package sink adapts the event stream to side-effect consumers.
package sink

import (
	"context"
	"cooksync/domain/event"
	"cooksync/repositories"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DiskSink maps persistable events to repository writes. It is consumed
// by the persistence worker, off the command loop's critical path.
type DiskSink struct {
	sessions repositories.ISessionRepository
	shares   repositories.IShareRepository
	log      *slog.Logger
}

func NewDiskSink(sessions repositories.ISessionRepository,
	shares repositories.IShareRepository, log *slog.Logger) DiskSink {
	return DiskSink{sessions: sessions, shares: shares, log: log}
}

func (d DiskSink) Consume(_ context.Context, e event.Event) error {
	switch evt := e.(type) {
	case event.SessionCreated:
		return d.sessions.StoreSession(evt.Session)
	case event.StepUpdated:
		return d.sessions.StoreStepUpdate(repositories.StepRecord{
			ID:          uuid.New(),
			SessionID:   evt.SessionID,
			CurrentStep: evt.CurrentStep,
			Notes:       evt.Notes,
			UpdatedBy:   evt.UpdatedBy,
			At:          time.Now().UTC(),
		})
	case event.SessionEnded:
		return d.sessions.MarkEnded(repositories.EndRecord{
			SessionID: evt.SessionID,
			Reason:    evt.Reason,
			At:        evt.At,
		})
	case event.RecipeShared:
		return d.shares.StoreShare(evt.Share)
	case event.ScanShared:
		return d.shares.StoreScan(repositories.ScanRecord{
			ID:          evt.ID,
			UserID:      evt.UserID,
			Ingredients: evt.Ingredients,
			Confidence:  evt.Confidence,
			ImageURL:    evt.ImageURL,
			At:          evt.At,
		})
	default:
		d.log.Debug(fmt.Sprintf("Not persisted event : %s", e.Type()))
		return nil
	}
}
