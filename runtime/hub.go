package runtime

import (
	"context"
	"cooksync/contract"
	"cooksync/domain/event"
	"cooksync/observability"
	"fmt"
	"log/slog"
)

// Hub delivers events to connected clients in three addressing modes:
// point-to-point, room (a session's participants), and global.
//
// Delivery is best-effort, at-most-once. There is no acknowledgement,
// no retry, and no offline queue: an offline user or a saturated sink
// loses the event.
type Hub struct {
	log      *slog.Logger
	registry contract.IRegistry
	monitor  *observability.Monitor
}

func NewHub(log *slog.Logger, registry contract.IRegistry, monitor *observability.Monitor) *Hub {
	return &Hub{log: log, registry: registry, monitor: monitor}
}

// ToUser delivers to the single current connection of a user.
// Silently drops when the user is offline.
func (h *Hub) ToUser(ctx context.Context, userID string, e event.Event) {
	entry, ok := h.registry.Lookup(userID)
	if !ok {
		h.log.Debug(fmt.Sprintf("User %s offline, dropping %s", userID, e.Type()))
		return
	}
	h.deliver(ctx, entry, e)
}

// ToRoom delivers to every participant of a session currently connected,
// optionally excluding one user (typically the requester).
func (h *Hub) ToRoom(ctx context.Context, participants []string, exclude string, e event.Event) {
	for _, userID := range participants {
		if userID == exclude {
			continue
		}
		entry, ok := h.registry.Lookup(userID)
		if !ok {
			continue
		}
		h.deliver(ctx, entry, e)
	}
}

// ToAll delivers to every connected client, regardless of session
// membership. Used for public shares and status broadcasts.
func (h *Hub) ToAll(ctx context.Context, e event.Event) {
	for _, entry := range h.registry.Entries() {
		h.deliver(ctx, entry, e)
	}
}

func (h *Hub) deliver(ctx context.Context, entry contract.Entry, e event.Event) {
	if err := entry.Sink.Consume(ctx, e); err != nil {
		h.monitor.IncrEventsDropped()
		h.log.Debug("Event dropped",
			"user_id", entry.Identity.UserID,
			"event", e.Type(),
			"error", err)
		return
	}
	h.monitor.IncrEventsDelivered()
}
