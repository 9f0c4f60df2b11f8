package services

import (
	"context"
	"cooksync/domain"
	"cooksync/domain/event"
	"cooksync/mocks"
	"cooksync/moderation"
	"cooksync/observability"
	"cooksync/runtime"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// chanSink hands delivered events to the test over a channel, since the
// coordinator loop runs on its own goroutine here.
type chanSink struct {
	events chan event.Event
}

func (s chanSink) Consume(_ context.Context, e event.Event) error {
	select {
	case s.events <- e:
		return nil
	default:
		return context.DeadlineExceeded
	}
}

func receiveEvent(t *testing.T, ch <-chan event.Event) event.Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("event never arrived")
		return nil
	}
}

func TestCollabServiceRoutesThroughCoordinator(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	// Given the real runtime behind the facade
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	monitor := observability.NewMonitor()
	registry := runtime.NewRegistry()
	hub := runtime.NewHub(log, registry, monitor)
	recipes := mocks.NewMockIRecipeProvider(ctrl)
	recipes.EXPECT().
		GetRecipe(gomock.Any(), "r1").
		Return(domain.Recipe{ID: "r1", Title: "Ratatouille", StepCount: 4}, nil)

	coordinator := runtime.NewCoordinator(log, registry, recipes, hub,
		moderation.Moderator{}, monitor, 16)
	service := NewCollabService(coordinator, registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = coordinator.Run(ctx) }()

	// When a user connects through the facade
	sink := chanSink{events: make(chan event.Event, 16)}
	service.Connect(domain.Identity{UserID: "alice", DisplayName: "Alice"}, sink)

	// Then the acknowledgement arrives and the connection is counted
	require.Equal("connected", receiveEvent(t, sink.events).Type())
	require.Eventually(func() bool { return service.ConnectionCount() == 1 },
		time.Second, 10*time.Millisecond)

	// When a command is dispatched
	service.Dispatch(domain.CreateSession{UserID: "alice", RecipeID: "r1"})

	// Then the resulting event flows back to the same sink
	created := receiveEvent(t, sink.events)
	require.Equal("session_created", created.Type())
	require.Equal("alice", created.(event.SessionCreated).Session.HostID)

	// When the user disconnects
	service.Disconnect("alice")

	// Then presence drains
	require.Eventually(func() bool { return service.ConnectionCount() == 0 },
		time.Second, 10*time.Millisecond)
}
