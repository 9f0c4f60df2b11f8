// Package runtime owns the live collaborative state: the session table,
// the connection registry, and the command loop that serializes every
// mutation. It orchestrates the system without containing transport or
// persistence logic.
package runtime

import (
	"context"
	"cooksync/contract"
	"cooksync/domain"
	"cooksync/domain/event"
	"cooksync/errors"
	"cooksync/moderation"
	"cooksync/observability"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const hostLeftReason = "Host left the session"

// connect and disconnect are internal commands: registration and the
// presence sweep must be serialized with every other mutation, so they
// travel through the same command channel as client intents.
type connectCmd struct {
	identity domain.Identity
	sink     contract.EventSink
}

func (c connectCmd) Requester() string { return c.identity.UserID }

type disconnectCmd struct {
	userID string
}

func (c disconnectCmd) Requester() string { return c.userID }

type evictCmd struct {
	olderThan time.Time
}

func (evictCmd) Requester() string { return "" }

// Coordinator is the single owner of the session table and the registry
// write path. All mutation flows through its command channel and is
// processed by one goroutine; per-connection handlers never touch the
// session table directly. This is what keeps join/leave/step updates
// free of data races without fine-grained locking.
type Coordinator struct {
	log       *slog.Logger
	registry  contract.IRegistry
	recipes   contract.IRecipeProvider
	hub       contract.IHub
	moderator moderation.Moderator
	monitor   *observability.Monitor
	commands  chan domain.Command
	records   chan event.Event
	sessions  map[string]*domain.Session
}

func NewCoordinator(log *slog.Logger, registry contract.IRegistry,
	recipes contract.IRecipeProvider, hub contract.IHub,
	moderator moderation.Moderator, monitor *observability.Monitor,
	bufferSize int) *Coordinator {
	return &Coordinator{
		log:       log,
		registry:  registry,
		recipes:   recipes,
		hub:       hub,
		moderator: moderator,
		monitor:   monitor,
		commands:  make(chan domain.Command, bufferSize),
		records:   make(chan event.Event, bufferSize),
		sessions:  make(map[string]*domain.Session),
	}
}

// Connect enqueues the registration of an authenticated connection.
// The connected acknowledgement is emitted from inside the loop so no
// command from this user can be observed before registration completes.
func (c *Coordinator) Connect(identity domain.Identity, sink contract.EventSink) {
	c.Dispatch(connectCmd{identity: identity, sink: sink})
}

// Disconnect enqueues the presence sweep for a lost connection.
// The sweep runs as one unit inside the loop: the user is drained out of
// every session they joined, then unregistered, before any later command.
func (c *Coordinator) Disconnect(userID string) {
	c.Dispatch(disconnectCmd{userID: userID})
}

// EvictEnded enqueues the removal of terminal sessions older than the cutoff.
func (c *Coordinator) EvictEnded(olderThan time.Time) {
	c.Dispatch(evictCmd{olderThan: olderThan})
}

// Dispatch hands a command to the coordinator loop without blocking the
// caller. A full channel drops the command: real-time responsiveness wins
// over completeness here, same policy as event delivery.
func (c *Coordinator) Dispatch(cmd domain.Command) {
	select {
	case c.commands <- cmd:
	default:
		c.monitor.IncrCommandsDropped()
		c.log.Warn(fmt.Sprintf("Command channel full, dropping command from %s", cmd.Requester()))
	}
}

// Records exposes the fire-and-forget persistence feed consumed by the
// persistence worker.
func (c *Coordinator) Records() <-chan event.Event {
	return c.records
}

// Run is the command loop. It implements contract.Worker and runs under
// the supervisor.
func (c *Coordinator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			c.log.Debug("Stopping coordinator")
			return ctx.Err()
		case cmd, ok := <-c.commands:
			if !ok {
				c.log.Debug("Command channel is closed")
				return nil
			}
			c.handle(ctx, cmd)
		}
	}
}

func (c *Coordinator) handle(ctx context.Context, cmd domain.Command) {
	switch cmd := cmd.(type) {
	case connectCmd:
		c.handleConnect(ctx, cmd)
	case disconnectCmd:
		c.handleDisconnect(ctx, cmd.userID)
	case evictCmd:
		c.handleEvict(cmd.olderThan)
	case domain.CreateSession:
		c.handleCreate(ctx, cmd)
	case domain.JoinSession:
		c.handleJoin(ctx, cmd)
	case domain.LeaveSession:
		c.leave(ctx, cmd.SessionID, cmd.UserID)
	case domain.UpdateStep:
		c.handleUpdateStep(ctx, cmd)
	case domain.PostMessage:
		c.handlePostMessage(ctx, cmd)
	case domain.ShareRecipe:
		c.handleShareRecipe(ctx, cmd)
	case domain.LikeShare:
		c.hub.ToAll(ctx, event.ShareLiked{ShareID: cmd.ShareID, UserID: cmd.UserID, At: time.Now().UTC()})
	case domain.CommentShare:
		c.handleCommentShare(ctx, cmd)
	case domain.ShareScan:
		c.handleShareScan(ctx, cmd)
	case domain.RequestCollab:
		c.handleRequestCollab(ctx, cmd)
	case domain.UpdateStatus:
		c.hub.ToAll(ctx, event.StatusUpdated{
			UserID:      cmd.UserID,
			Status:      cmd.Status,
			RecipeID:    cmd.RecipeID,
			CurrentStep: cmd.CurrentStep,
			At:          time.Now().UTC(),
		})
	default:
		c.log.Warn(fmt.Sprintf("Unhandled command %T from %s", cmd, cmd.Requester()))
	}
}

func (c *Coordinator) handleConnect(ctx context.Context, cmd connectCmd) {
	c.registry.Register(cmd.identity, cmd.sink)
	c.monitor.SetConnections(c.registry.Count())
	c.hub.ToUser(ctx, cmd.identity.UserID, event.Connected{
		UserID:    cmd.identity.UserID,
		Timestamp: time.Now().UTC(),
	})
}

// handleDisconnect is the presence sweep: the user leaves every session
// they participate in, then loses their registry entry. Running inside
// the loop makes the sweep atomic with respect to other commands, so no
// dangling participant survives a connection loss.
func (c *Coordinator) handleDisconnect(ctx context.Context, userID string) {
	for id, session := range c.sessions {
		if session.IsParticipant(userID) {
			c.leave(ctx, id, userID)
		}
	}
	c.registry.Unregister(userID)
	c.monitor.SetConnections(c.registry.Count())
}

func (c *Coordinator) handleEvict(olderThan time.Time) {
	for id, session := range c.sessions {
		if !session.IsActive && session.EndedAt.Before(olderThan) {
			delete(c.sessions, id)
			c.monitor.IncrSessionsEvicted()
			c.log.Debug(fmt.Sprintf("Evicted ended session %s", id))
		}
	}
}

func (c *Coordinator) handleCreate(ctx context.Context, cmd domain.CreateSession) {
	recipe, err := c.recipes.GetRecipe(ctx, cmd.RecipeID)
	if err != nil {
		c.fail(ctx, cmd.UserID, errors.ErrRecipeNotFound)
		return
	}

	host := domain.Identity{UserID: cmd.UserID}
	if entry, ok := c.registry.Lookup(cmd.UserID); ok {
		host = entry.Identity
	}
	session := domain.NewSession(uuid.NewString(), host, recipe, cmd.IsPublic, time.Now().UTC())
	c.sessions[session.ID] = session
	c.monitor.IncrSessionsCreated()
	c.monitor.IncrActiveSessions()

	snapshot := session.Snapshot()
	c.persist(event.SessionCreated{Session: snapshot})

	// No broadcast on create: the session becomes visible to others only
	// when they join it.
	c.hub.ToUser(ctx, cmd.UserID, event.SessionCreated{Session: snapshot})
}

func (c *Coordinator) handleJoin(ctx context.Context, cmd domain.JoinSession) {
	session, ok := c.sessions[cmd.SessionID]
	if !ok || !session.IsActive {
		c.fail(ctx, cmd.UserID, errors.ErrSessionNotFound)
		return
	}

	session.Join(cmd.UserID)

	c.hub.ToRoom(ctx, session.Participants(), cmd.UserID, event.UserJoined{
		SessionID:        session.ID,
		UserID:           cmd.UserID,
		ParticipantCount: session.ParticipantCount(),
	})
	c.hub.ToUser(ctx, cmd.UserID, event.SessionJoined{Session: session.Snapshot()})
}

func (c *Coordinator) handleUpdateStep(ctx context.Context, cmd domain.UpdateStep) {
	session, ok := c.sessions[cmd.SessionID]
	if !ok || !session.IsActive {
		c.fail(ctx, cmd.UserID, errors.ErrSessionNotFound)
		return
	}
	if session.HostID != cmd.UserID {
		c.fail(ctx, cmd.UserID, errors.ErrNotHost)
		return
	}
	if cmd.NewStep < 0 {
		c.fail(ctx, cmd.UserID, errors.ErrNegativeStep)
		return
	}

	// No upper bound check against TotalSteps: hosts may jump ahead of
	// the recipe, and clients render an out-of-range step as "done".
	session.CurrentStep = cmd.NewStep

	updated := event.StepUpdated{
		SessionID:   session.ID,
		CurrentStep: session.CurrentStep,
		TotalSteps:  session.TotalSteps,
		Notes:       cmd.Notes,
		UpdatedBy:   cmd.UserID,
	}
	c.persist(updated)
	// The whole room, host included, hears the step change.
	c.hub.ToRoom(ctx, session.Participants(), "", updated)
}

// leave removes a user from a session. Host departure ends the session.
// Leaving an absent or ended session is a silent no-op, which makes the
// disconnect sweep and duplicate leave frames idempotent.
func (c *Coordinator) leave(ctx context.Context, sessionID, userID string) {
	session, ok := c.sessions[sessionID]
	if !ok || !session.IsActive {
		return
	}
	if !session.IsParticipant(userID) {
		return
	}

	session.Leave(userID)

	if session.HostID == userID {
		now := time.Now().UTC()
		session.End(now)
		c.monitor.IncrSessionsEnded()
		c.monitor.DecrActiveSessions()

		ended := event.SessionEnded{SessionID: session.ID, Reason: hostLeftReason, At: now}
		c.persist(ended)
		c.hub.ToRoom(ctx, session.Participants(), "", ended)
		return
	}

	c.hub.ToRoom(ctx, session.Participants(), "", event.UserLeft{
		SessionID:        session.ID,
		UserID:           userID,
		ParticipantCount: session.ParticipantCount(),
	})
}

// handlePostMessage drops messages from non-participants silently: no
// broadcast, no error event. Clients that left a session mid-flight keep
// sending for a moment, and answering each of those with an error would
// only generate noise.
func (c *Coordinator) handlePostMessage(ctx context.Context, cmd domain.PostMessage) {
	session, ok := c.sessions[cmd.SessionID]
	if !ok || !session.IsActive || !session.IsParticipant(cmd.UserID) {
		c.log.Debug(fmt.Sprintf("Dropping message from non-participant %s in session %s",
			cmd.UserID, cmd.SessionID))
		return
	}

	entry, _ := c.registry.Lookup(cmd.UserID)
	c.hub.ToRoom(ctx, session.Participants(), "", event.SessionMessage{
		SessionID:   session.ID,
		UserID:      cmd.UserID,
		DisplayName: entry.Identity.DisplayName,
		Message:     c.moderator.Censor(cmd.Message),
		MessageType: cmd.MessageType,
		At:          time.Now().UTC(),
	})
}

func (c *Coordinator) handleShareRecipe(ctx context.Context, cmd domain.ShareRecipe) {
	share := domain.LiveShare{
		ID:          uuid.New(),
		UserID:      cmd.UserID,
		RecipeID:    cmd.RecipeID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Tags:        cmd.Tags,
		Timestamp:   time.Now().UTC(),
	}

	shared := event.RecipeShared{Share: share}
	c.persist(shared)
	c.hub.ToAll(ctx, shared)
}

func (c *Coordinator) handleCommentShare(ctx context.Context, cmd domain.CommentShare) {
	c.hub.ToAll(ctx, event.ShareCommented{
		ShareID: cmd.ShareID,
		UserID:  cmd.UserID,
		Comment: c.moderator.Censor(cmd.Comment),
		At:      time.Now().UTC(),
	})
}

func (c *Coordinator) handleShareScan(ctx context.Context, cmd domain.ShareScan) {
	scan := event.ScanShared{
		ID:          uuid.New(),
		UserID:      cmd.UserID,
		Ingredients: cmd.Ingredients,
		Confidence:  cmd.Confidence,
		ImageURL:    cmd.ImageURL,
		At:          time.Now().UTC(),
	}
	c.persist(scan)
	c.hub.ToAll(ctx, scan)
}

// handleRequestCollab is point-to-point: only the target hears it, and an
// offline target means the request is silently lost.
func (c *Coordinator) handleRequestCollab(ctx context.Context, cmd domain.RequestCollab) {
	from, _ := c.registry.Lookup(cmd.UserID)
	c.hub.ToUser(ctx, cmd.TargetUserID, event.CollabRequest{
		FromUserID:      cmd.UserID,
		FromDisplayName: from.Identity.DisplayName,
		RecipeID:        cmd.RecipeID,
		Message:         cmd.Message,
		At:              time.Now().UTC(),
	})
}

// fail reports an error to the requester only. The session table is never
// mutated on a failed command, and nothing is broadcast.
func (c *Coordinator) fail(ctx context.Context, userID string, err error) {
	c.hub.ToUser(ctx, userID, event.Error{Message: err.Error()})
}

// persist feeds the detached persistence worker. The write never blocks
// the command loop: a saturated backlog loses the record, and in-memory
// state remains authoritative for the live session.
func (c *Coordinator) persist(e event.Event) {
	select {
	case c.records <- e:
	default:
		c.monitor.IncrRecordsDropped()
		c.log.Warn(fmt.Sprintf("Persistence backlog full, dropping %s record", e.Type()))
	}
}

// SessionSnapshot returns the current snapshot of a session, if present.
// Must only be called from the coordinator goroutine or from tests that
// drive handle() synchronously; live reads go through events.
func (c *Coordinator) SessionSnapshot(sessionID string) (domain.Snapshot, bool) {
	session, ok := c.sessions[sessionID]
	if !ok {
		return domain.Snapshot{}, false
	}
	return session.Snapshot(), true
}
