//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"cooksync/domain"
	"cooksync/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one client's outbound channel. Delivery is best-effort,
// at-most-once: a full sink drops the event rather than blocking the caller.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// Entry pairs a connected identity with its outbound sink.
type Entry struct {
	Identity domain.Identity
	Sink     EventSink
}

// IRegistry maps each connected user to exactly one live connection.
// Registering twice overwrites the previous mapping (single-connection model).
type IRegistry interface {
	Register(identity domain.Identity, sink EventSink)
	Unregister(userID string)
	Lookup(userID string) (Entry, bool)
	Count() int
	Entries() []Entry
}

// IHub delivers events in three addressing modes: point-to-point, room
// (a session's current participants), and global.
type IHub interface {
	ToUser(ctx context.Context, userID string, e event.Event)
	ToRoom(ctx context.Context, participants []string, exclude string, e event.Event)
	ToAll(ctx context.Context, e event.Event)
}

// IRecipeProvider resolves recipe metadata for session creation.
// Implementations must return errors.ErrRecipeNotFound on unknown ids.
type IRecipeProvider interface {
	GetRecipe(ctx context.Context, recipeID string) (domain.Recipe, error)
}

// IIdentityProvider turns a bearer token into an Identity, exactly once
// per connection, before any command is processed.
type IIdentityProvider interface {
	Authenticate(token string) (domain.Identity, error)
}
