//go:generate go run go.uber.org/mock/mockgen -source=share.go -destination=../mocks/mock_share_repository.go -package=mocks
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

type IShareRepository interface {
	StoreShare(share domain.LiveShare) error
	StoreScan(record ScanRecord) error
	ListRecentShares(limit int) ([]domain.LiveShare, error)
}

// ScanRecord is a persisted ingredient scan share.
type ScanRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	Ingredients []string  `json:"ingredients"`
	Confidence  float64   `json:"confidence"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	At          time.Time `json:"at"`
}

type ShareRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewShareRepository(db *badger.DB, log *slog.Logger) ShareRepository {
	return ShareRepository{db: db, log: log}
}

// StoreShare appends to the live feed log. The padded timestamp in the
// key keeps shares naturally sorted by time under a prefix scan.
func (r ShareRepository) StoreShare(share domain.LiveShare) error {
	key := fmt.Sprintf("share:%019d:%s", share.Timestamp.UnixNano(), share.ID)
	return r.set(key, share)
}

func (r ShareRepository) StoreScan(record ScanRecord) error {
	key := fmt.Sprintf("scan:%019d:%s", record.At.UnixNano(), record.ID)
	return r.set(key, record)
}

// ListRecentShares walks the share log newest-first up to limit entries.
func (r ShareRepository) ListRecentShares(limit int) ([]domain.LiveShare, error) {
	var shares []domain.LiveShare
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("share:")
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible key, then walk backwards.
		seekKey := append(prefix, []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(shares) == limit {
				break
			}
			var share domain.LiveShare
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &share)
			})
			if err != nil {
				return err
			}
			shares = append(shares, share)
		}
		return nil
	})
	return shares, err
}

func (r ShareRepository) set(key string, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}
