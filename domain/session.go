package domain

import (
	"time"

	"github.com/samber/lo"
)

// Session is a collaborative live walkthrough of a recipe.
// The host is the participant allowed to advance the current step;
// when the host leaves, the session becomes terminal.
type Session struct {
	ID           string
	HostID       string
	RecipeID     string
	Title        string
	participants []string // insertion order preserved for display
	CurrentStep  int
	TotalSteps   int
	IsActive     bool
	IsPublic     bool
	CreatedAt    time.Time
	EndedAt      time.Time
}

func NewSession(id string, host Identity, recipe Recipe, isPublic bool, now time.Time) *Session {
	return &Session{
		ID:           id,
		HostID:       host.UserID,
		RecipeID:     recipe.ID,
		Title:        recipe.Title,
		participants: []string{host.UserID},
		CurrentStep:  0,
		TotalSteps:   recipe.StepCount,
		IsActive:     true,
		IsPublic:     isPublic,
		CreatedAt:    now,
	}
}

// Join adds a participant. Joining twice is a no-op, keeping the
// participant set free of duplicates.
func (s *Session) Join(userID string) {
	if s.IsParticipant(userID) {
		return
	}
	s.participants = append(s.participants, userID)
}

// Leave removes a participant if present. The caller decides whether
// the departure ends the session (host rule lives in the coordinator).
func (s *Session) Leave(userID string) {
	s.participants = lo.Filter(s.participants, func(id string, _ int) bool {
		return id != userID
	})
}

func (s *Session) IsParticipant(userID string) bool {
	return lo.Contains(s.participants, userID)
}

func (s *Session) ParticipantCount() int {
	return len(s.participants)
}

// Participants returns a copy so callers cannot mutate the membership list.
func (s *Session) Participants() []string {
	out := make([]string, len(s.participants))
	copy(out, s.participants)
	return out
}

// End makes the session terminal. Terminal sessions reject joins and
// step updates, and are eventually evicted from the store.
func (s *Session) End(now time.Time) {
	s.IsActive = false
	s.EndedAt = now
}

// Snapshot is the wire representation of a session, returned to the
// requester on create and join.
type Snapshot struct {
	ID           string    `json:"id"`
	HostID       string    `json:"hostId"`
	RecipeID     string    `json:"recipeId"`
	Title        string    `json:"title"`
	Participants []string  `json:"participants"`
	CurrentStep  int       `json:"currentStep"`
	TotalSteps   int       `json:"totalSteps"`
	IsActive     bool      `json:"isActive"`
	IsPublic     bool      `json:"isPublic"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:           s.ID,
		HostID:       s.HostID,
		RecipeID:     s.RecipeID,
		Title:        s.Title,
		Participants: s.Participants(),
		CurrentStep:  s.CurrentStep,
		TotalSteps:   s.TotalSteps,
		IsActive:     s.IsActive,
		IsPublic:     s.IsPublic,
		CreatedAt:    s.CreatedAt,
	}
}
