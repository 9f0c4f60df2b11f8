//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"cooksync/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ISessionRepository interface {
	StoreSession(snapshot domain.Snapshot) error
	StoreStepUpdate(record StepRecord) error
	MarkEnded(record EndRecord) error
	GetSession(sessionID string) (domain.Snapshot, error)
}

// StepRecord is one step change in the audit log of a session.
type StepRecord struct {
	ID          uuid.UUID `json:"id"`
	SessionID   string    `json:"sessionId"`
	CurrentStep int       `json:"currentStep"`
	Notes       string    `json:"notes,omitempty"`
	UpdatedBy   string    `json:"updatedBy"`
	At          time.Time `json:"at"`
}

// EndRecord marks a session as terminal in the store.
type EndRecord struct {
	SessionID string    `json:"sessionId"`
	Reason    string    `json:"reason"`
	At        time.Time `json:"at"`
}

type SessionRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSessionRepository(db *badger.DB, log *slog.Logger) SessionRepository {
	return SessionRepository{db: db, log: log}
}

// StoreSession persists the session snapshot under "session:{id}".
// Called on create; the live table stays authoritative, this is a
// best-effort record for history and debugging.
func (r SessionRepository) StoreSession(snapshot domain.Snapshot) error {
	return r.set(fmt.Sprintf("session:%s", snapshot.ID), snapshot)
}

// StoreStepUpdate appends to the step log of a session.
// The key is formatted as "step:{session_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using the UUID as a collision disconnector if
//     two updates land on the same nanosecond.
func (r SessionRepository) StoreStepUpdate(record StepRecord) error {
	key := fmt.Sprintf("step:%s:%019d:%s", record.SessionID, record.At.UnixNano(), record.ID)
	return r.set(key, record)
}

// MarkEnded records the terminal transition under "ended:{session_id}".
func (r SessionRepository) MarkEnded(record EndRecord) error {
	return r.set(fmt.Sprintf("ended:%s", record.SessionID), record)
}

func (r SessionRepository) GetSession(sessionID string) (domain.Snapshot, error) {
	var snapshot domain.Snapshot
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fmt.Sprintf("session:%s", sessionID)))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &snapshot)
		})
	})
	return snapshot, err
}

func (r SessionRepository) set(key string, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}
