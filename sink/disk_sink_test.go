package sink

import (
	"context"
	"cooksync/domain"
	"cooksync/domain/event"
	"cooksync/mocks"
	"cooksync/repositories"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSink(t *testing.T) (DiskSink, *mocks.MockISessionRepository, *mocks.MockIShareRepository) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionRepository(ctrl)
	shares := mocks.NewMockIShareRepository(ctrl)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDiskSink(sessions, shares, log), sessions, shares
}

func TestDiskSinkStoresSessionLifecycle(t *testing.T) {
	require := require.New(t)
	disk, sessions, _ := newTestSink(t)

	// Given the records a session emits over its life
	snapshot := domain.Snapshot{ID: "s1", HostID: "alice"}
	endedAt := time.Now().UTC()

	sessions.EXPECT().StoreSession(snapshot).Return(nil)
	sessions.EXPECT().
		StoreStepUpdate(gomock.Any()).
		DoAndReturn(func(record repositories.StepRecord) error {
			require.Equal("s1", record.SessionID)
			require.Equal(3, record.CurrentStep)
			require.Equal("alice", record.UpdatedBy)
			require.NotEqual(uuid.Nil, record.ID)
			return nil
		})
	sessions.EXPECT().MarkEnded(repositories.EndRecord{
		SessionID: "s1",
		Reason:    "Host left the session",
		At:        endedAt,
	}).Return(nil)

	// When they flow through the sink
	ctx := context.Background()
	require.NoError(disk.Consume(ctx, event.SessionCreated{Session: snapshot}))
	require.NoError(disk.Consume(ctx, event.StepUpdated{SessionID: "s1", CurrentStep: 3, UpdatedBy: "alice"}))
	require.NoError(disk.Consume(ctx, event.SessionEnded{SessionID: "s1", Reason: "Host left the session", At: endedAt}))
}

func TestDiskSinkStoresSocialRecords(t *testing.T) {
	require := require.New(t)
	disk, _, shares := newTestSink(t)

	// Given a share and a scan
	share := domain.LiveShare{ID: uuid.New(), UserID: "alice", RecipeID: "r1"}
	scanID := uuid.New()
	at := time.Now().UTC()

	shares.EXPECT().StoreShare(share).Return(nil)
	shares.EXPECT().StoreScan(repositories.ScanRecord{
		ID:          scanID,
		UserID:      "carol",
		Ingredients: []string{"tomato"},
		Confidence:  0.8,
		At:          at,
	}).Return(nil)

	// When they flow through the sink
	ctx := context.Background()
	require.NoError(disk.Consume(ctx, event.RecipeShared{Share: share}))
	require.NoError(disk.Consume(ctx, event.ScanShared{
		ID: scanID, UserID: "carol", Ingredients: []string{"tomato"}, Confidence: 0.8, At: at,
	}))
}

func TestDiskSinkIgnoresEphemeralEvents(t *testing.T) {
	require := require.New(t)
	disk, _, _ := newTestSink(t)

	// Ephemeral events must not reach any repository; the mocks would
	// fail the test on an unexpected call.
	ctx := context.Background()
	require.NoError(disk.Consume(ctx, event.ShareLiked{ShareID: "sh1", UserID: "bob"}))
	require.NoError(disk.Consume(ctx, event.SessionMessage{SessionID: "s1", Message: "hi"}))
	require.NoError(disk.Consume(ctx, event.Connected{UserID: "alice"}))
}
