package repositories

import (
	"context"
	"cooksync/domain"
	"cooksync/errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	require := require.New(t)

	// Given a stored session snapshot
	repo := NewSessionRepository(openTestDB(t), testLogger())
	snapshot := domain.Snapshot{
		ID:           "s1",
		HostID:       "alice",
		RecipeID:     "r1",
		Title:        "Beef Bourguignon",
		Participants: []string{"alice", "bob"},
		CurrentStep:  2,
		TotalSteps:   5,
		IsActive:     true,
		IsPublic:     true,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(repo.StoreSession(snapshot))

	// When it is read back
	got, err := repo.GetSession("s1")

	// Then every field survives
	require.NoError(err)
	require.Equal(snapshot, got)
}

func TestSessionRepositoryUnknownSession(t *testing.T) {
	require := require.New(t)

	repo := NewSessionRepository(openTestDB(t), testLogger())

	_, err := repo.GetSession("ghost")
	require.Error(err)
}

func TestSessionRepositoryStepAndEndRecords(t *testing.T) {
	require := require.New(t)

	// Given a session repository
	repo := NewSessionRepository(openTestDB(t), testLogger())

	// When step updates and the terminal record are written
	require.NoError(repo.StoreStepUpdate(StepRecord{
		ID:          uuid.New(),
		SessionID:   "s1",
		CurrentStep: 1,
		UpdatedBy:   "alice",
		At:          time.Now().UTC(),
	}))
	require.NoError(repo.StoreStepUpdate(StepRecord{
		ID:          uuid.New(),
		SessionID:   "s1",
		CurrentStep: 2,
		UpdatedBy:   "alice",
		At:          time.Now().UTC(),
	}))
	require.NoError(repo.MarkEnded(EndRecord{
		SessionID: "s1",
		Reason:    "Host left the session",
		At:        time.Now().UTC(),
	}))

	// Then no write reports an error; records are append-only audit data
}

func TestShareRepositoryListsNewestFirst(t *testing.T) {
	require := require.New(t)

	// Given three shares written out of order
	repo := NewShareRepository(openTestDB(t), testLogger())
	base := time.Now().UTC()
	for _, offset := range []time.Duration{2 * time.Second, 0, time.Second} {
		share := domain.LiveShare{
			ID:        uuid.New(),
			UserID:    "alice",
			RecipeID:  "r1",
			Title:     "share",
			Timestamp: base.Add(offset),
		}
		require.NoError(repo.StoreShare(share))
	}

	// When the recent feed is listed
	shares, err := repo.ListRecentShares(10)

	// Then shares come back newest first
	require.NoError(err)
	require.Len(shares, 3)
	require.True(shares[0].Timestamp.After(shares[1].Timestamp))
	require.True(shares[1].Timestamp.After(shares[2].Timestamp))
}

func TestShareRepositoryHonorsLimit(t *testing.T) {
	require := require.New(t)

	// Given more shares than the requested page
	repo := NewShareRepository(openTestDB(t), testLogger())
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(repo.StoreShare(domain.LiveShare{
			ID:        uuid.New(),
			UserID:    "alice",
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}))
	}

	// When two are requested
	shares, err := repo.ListRecentShares(2)

	// Then only the two newest are returned
	require.NoError(err)
	require.Len(shares, 2)
	require.Equal(base.Add(4*time.Second), shares[0].Timestamp)
}

func TestShareRepositoryStoresScans(t *testing.T) {
	require := require.New(t)

	repo := NewShareRepository(openTestDB(t), testLogger())

	require.NoError(repo.StoreScan(ScanRecord{
		ID:          uuid.New(),
		UserID:      "carol",
		Ingredients: []string{"tomato", "basil"},
		Confidence:  0.92,
		At:          time.Now().UTC(),
	}))

	// Scans live under their own prefix and must not leak into the share feed
	shares, err := repo.ListRecentShares(10)
	require.NoError(err)
	require.Empty(shares)
}

func TestRecipeRepositoryRoundTrip(t *testing.T) {
	require := require.New(t)

	// Given a stored recipe
	repo := NewRecipeRepository(openTestDB(t), testLogger())
	recipe := domain.Recipe{ID: "r1", Title: "Beef Bourguignon", StepCount: 5}
	require.NoError(repo.StoreRecipe(recipe))

	// When it is looked up
	got, err := repo.GetRecipe(context.Background(), "r1")

	// Then the catalog entry survives
	require.NoError(err)
	require.Equal(recipe, got)
}

func TestRecipeRepositoryUnknownRecipe(t *testing.T) {
	require := require.New(t)

	repo := NewRecipeRepository(openTestDB(t), testLogger())

	_, err := repo.GetRecipe(context.Background(), "ghost")
	require.ErrorIs(err, errors.ErrRecipeNotFound)
}
