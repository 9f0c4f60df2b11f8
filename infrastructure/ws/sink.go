package ws

import (
	"context"
	"cooksync/domain/event"
	"fmt"
)

// ConnSink is one connection's outbound buffer.
// Consume is called by the hub; the write pump drains Events onto the
// wire. A full buffer means the client cannot keep up, and the event is
// dropped rather than blocking the coordinator.
type ConnSink struct {
	Events chan event.Event
}

func NewConnSink(bufferSize int) *ConnSink {
	return &ConnSink{Events: make(chan event.Event, bufferSize)}
}

func (s *ConnSink) Consume(ctx context.Context, e event.Event) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("connection buffer full")
	}
}
