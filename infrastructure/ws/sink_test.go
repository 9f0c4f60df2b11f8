package ws

import (
	"context"
	"cooksync/domain/event"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnSinkBuffersEvents(t *testing.T) {
	require := require.New(t)

	// Given a sink with room
	sink := NewConnSink(2)

	// When events are consumed
	require.NoError(sink.Consume(context.Background(), event.Connected{UserID: "alice"}))
	require.NoError(sink.Consume(context.Background(), event.Error{Message: "boom"}))

	// Then the write pump can drain them in order
	require.Equal("connected", (<-sink.Events).Type())
	require.Equal("error", (<-sink.Events).Type())
}

func TestConnSinkDropsWhenFull(t *testing.T) {
	require := require.New(t)

	// Given a saturated sink
	sink := NewConnSink(1)
	require.NoError(sink.Consume(context.Background(), event.Connected{UserID: "alice"}))

	// When one more event arrives
	err := sink.Consume(context.Background(), event.Error{Message: "boom"})

	// Then it is refused instead of blocking the hub
	require.Error(err)
	require.Len(sink.Events, 1)
}
