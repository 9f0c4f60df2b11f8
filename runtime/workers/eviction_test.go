package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingEvictor struct {
	mu      sync.Mutex
	cutoffs []time.Time
	called  chan struct{}
	once    sync.Once
}

func (e *recordingEvictor) EvictEnded(olderThan time.Time) {
	e.mu.Lock()
	e.cutoffs = append(e.cutoffs, olderThan)
	e.mu.Unlock()
	e.once.Do(func() { close(e.called) })
}

func TestEvictionWorkerUsesTTLCutoff(t *testing.T) {
	require := require.New(t)

	// Given an eviction worker with a one hour TTL and a fast tick
	evictor := &recordingEvictor{called: make(chan struct{})}
	worker := NewEvictionWorker(evictor, time.Hour, 5*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// When the first tick fires
	select {
	case <-evictor.called:
	case <-time.After(time.Second):
		t.Fatal("eviction never triggered")
	}

	// Then the cutoff sits one TTL in the past
	evictor.mu.Lock()
	cutoff := evictor.cutoffs[0]
	evictor.mu.Unlock()
	age := time.Since(cutoff)
	require.Greater(age, 59*time.Minute)
	require.Less(age, 61*time.Minute)
}

func TestEvictionWorkerStopsOnCancel(t *testing.T) {
	require := require.New(t)

	// Given a running eviction worker
	evictor := &recordingEvictor{called: make(chan struct{})}
	worker := NewEvictionWorker(evictor, time.Hour, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// When the context is canceled
	cancel()

	// Then the worker exits with the context error
	select {
	case err := <-done:
		require.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("eviction worker did not stop")
	}
}
