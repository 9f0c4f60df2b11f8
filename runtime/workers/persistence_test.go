package workers

import (
	"context"
	"cooksync/domain"
	"cooksync/domain/event"
	"cooksync/mocks"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPersistenceWorkerDrainsRecords(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	// Given two records queued on the feed
	records := make(chan event.Event, 2)
	records <- event.SessionCreated{Session: domain.Snapshot{ID: "s1"}}
	records <- event.StepUpdated{SessionID: "s1", CurrentStep: 2}

	consumed := make(chan event.Event, 2)
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.Event) error {
			consumed <- e
			return nil
		}).Times(2)

	// When the worker runs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker := NewPersistenceWorker(records, sink, testLogger())
	go func() { _ = worker.Run(ctx) }()

	// Then both records reach the sink, in order
	first := receiveRecord(t, consumed)
	second := receiveRecord(t, consumed)
	require.Equal("session_created", first.Type())
	require.Equal("step_updated", second.Type())
}

func TestPersistenceWorkerSwallowsWriteFailures(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a sink that fails on the first write
	records := make(chan event.Event, 2)
	records <- event.SessionEnded{SessionID: "s1"}
	records <- event.SessionEnded{SessionID: "s2"}

	consumed := make(chan event.Event, 2)
	call := 0
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.Event) error {
			consumed <- e
			call++
			if call == 1 {
				return fmt.Errorf("disk unavailable")
			}
			return nil
		}).Times(2)

	// When the worker runs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker := NewPersistenceWorker(records, sink, testLogger())
	go func() { _ = worker.Run(ctx) }()

	// Then the failure does not stop the drain
	receiveRecord(t, consumed)
	second := receiveRecord(t, consumed)
	require.Equal("session_ended", second.Type())
}

func TestPersistenceWorkerStopsWhenFeedCloses(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a closed record feed
	records := make(chan event.Event)
	close(records)

	// When the worker runs
	worker := NewPersistenceWorker(records, mocks.NewMockEventSink(ctrl), testLogger())
	err := worker.Run(context.Background())

	// Then it terminates cleanly, signalling the supervisor not to restart
	require.NoError(err)
}

func receiveRecord(t *testing.T, ch <-chan event.Event) event.Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("record never reached the sink")
		return nil
	}
}
