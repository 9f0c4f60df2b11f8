package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	host := Identity{UserID: "alice", DisplayName: "Alice"}
	recipe := Recipe{ID: "r1", Title: "Beef Bourguignon", StepCount: 5}
	return NewSession("s1", host, recipe, true, time.Now().UTC())
}

func TestNewSessionStartsWithHostOnly(t *testing.T) {
	require := require.New(t)

	// When a session is created
	session := newTestSession()

	// Then the host is the sole participant, at step zero
	require.Equal([]string{"alice"}, session.Participants())
	require.Equal(0, session.CurrentStep)
	require.Equal(5, session.TotalSteps)
	require.True(session.IsActive)
}

func TestJoinIsIdempotent(t *testing.T) {
	require := require.New(t)

	// Given bob already in the session
	session := newTestSession()
	session.Join("bob")

	// When he joins again
	session.Join("bob")

	// Then membership is unchanged
	require.Equal([]string{"alice", "bob"}, session.Participants())
	require.Equal(2, session.ParticipantCount())
}

func TestLeaveRemovesOnlyThatUser(t *testing.T) {
	require := require.New(t)

	// Given three participants
	session := newTestSession()
	session.Join("bob")
	session.Join("carol")

	// When bob leaves
	session.Leave("bob")

	// Then the others remain in insertion order
	require.Equal([]string{"alice", "carol"}, session.Participants())
	require.False(session.IsParticipant("bob"))
}

func TestEndMakesSessionTerminal(t *testing.T) {
	require := require.New(t)

	// Given an active session
	session := newTestSession()
	now := time.Now().UTC()

	// When it ends
	session.End(now)

	// Then it is terminal with the end time recorded
	require.False(session.IsActive)
	require.Equal(now, session.EndedAt)
}

func TestSnapshotIsDetachedFromSession(t *testing.T) {
	require := require.New(t)

	// Given a snapshot of a live session
	session := newTestSession()
	snapshot := session.Snapshot()

	// When the session changes afterwards
	session.Join("bob")
	session.CurrentStep = 3

	// Then the snapshot keeps the state it captured
	require.Equal([]string{"alice"}, snapshot.Participants)
	require.Equal(0, snapshot.CurrentStep)
}

func TestParticipantsReturnsACopy(t *testing.T) {
	require := require.New(t)

	// Given the participant list of a session
	session := newTestSession()
	participants := session.Participants()

	// When the caller mutates the returned slice
	participants[0] = "mallory"

	// Then the session membership is unaffected
	require.True(session.IsParticipant("alice"))
	require.False(session.IsParticipant("mallory"))
}
