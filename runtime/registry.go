package runtime

import (
	"cooksync/contract"
	"cooksync/domain"
	"sync"
)

// Registry is the one-to-one map of connected users to their live
// connection. It backs point-to-point delivery and presence counts.
type Registry struct {
	mu          sync.RWMutex
	connections map[string]contract.Entry
}

func NewRegistry() *Registry {
	return &Registry{connections: make(map[string]contract.Entry)}
}

// Register binds a user to a connection sink. A second registration for
// the same user overwrites the first: the model is single connection per
// user, and the newest connection wins.
func (r *Registry) Register(identity domain.Identity, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections[identity.UserID] = contract.Entry{Identity: identity, Sink: sink}
}

// Unregister removes the mapping if present. Idempotent.
func (r *Registry) Unregister(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.connections, userID)
}

// Lookup resolves a user to their current connection, if online.
func (r *Registry) Lookup(userID string) (contract.Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.connections[userID]
	return entry, ok
}

// Count returns the number of distinct connected users, independent of
// session membership.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}

// Entries returns a snapshot of all live connections for global fan-out.
func (r *Registry) Entries() []contract.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]contract.Entry, 0, len(r.connections))
	for _, entry := range r.connections {
		entries = append(entries, entry)
	}
	return entries
}
