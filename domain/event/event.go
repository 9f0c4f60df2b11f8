// Package event defines the outbound events pushed to connected clients.
// Each event knows its wire tag; the transport wraps it in a typed envelope.
package event

import (
	"cooksync/domain"
	"time"

	"github.com/google/uuid"
)

type Event interface {
	Type() string
}

type Connected struct {
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}

func (Connected) Type() string { return "connected" }

type SessionCreated struct {
	Session domain.Snapshot `json:"session"`
}

func (SessionCreated) Type() string { return "session_created" }

type SessionJoined struct {
	Session domain.Snapshot `json:"session"`
}

func (SessionJoined) Type() string { return "session_joined" }

type UserJoined struct {
	SessionID        string `json:"sessionId"`
	UserID           string `json:"userId"`
	ParticipantCount int    `json:"participantCount"`
}

func (UserJoined) Type() string { return "user_joined" }

type UserLeft struct {
	SessionID        string `json:"sessionId"`
	UserID           string `json:"userId"`
	ParticipantCount int    `json:"participantCount"`
}

func (UserLeft) Type() string { return "user_left" }

type StepUpdated struct {
	SessionID   string `json:"sessionId"`
	CurrentStep int    `json:"currentStep"`
	TotalSteps  int    `json:"totalSteps"`
	Notes       string `json:"notes,omitempty"`
	UpdatedBy   string `json:"updatedBy"`
}

func (StepUpdated) Type() string { return "step_updated" }

type SessionEnded struct {
	SessionID string    `json:"sessionId"`
	Reason    string    `json:"reason"`
	At        time.Time `json:"at"`
}

func (SessionEnded) Type() string { return "session_ended" }

type SessionMessage struct {
	SessionID   string    `json:"sessionId"`
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
	Message     string    `json:"message"`
	MessageType string    `json:"messageType"`
	At          time.Time `json:"at"`
}

func (SessionMessage) Type() string { return "session_message" }

type RecipeShared struct {
	Share domain.LiveShare `json:"share"`
}

func (RecipeShared) Type() string { return "recipe_shared" }

type ShareLiked struct {
	ShareID string    `json:"shareId"`
	UserID  string    `json:"userId"`
	At      time.Time `json:"at"`
}

func (ShareLiked) Type() string { return "share_liked" }

type ShareCommented struct {
	ShareID string    `json:"shareId"`
	UserID  string    `json:"userId"`
	Comment string    `json:"comment"`
	At      time.Time `json:"at"`
}

func (ShareCommented) Type() string { return "share_commented" }

type ScanShared struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	Ingredients []string  `json:"ingredients"`
	Confidence  float64   `json:"confidence"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	At          time.Time `json:"at"`
}

func (ScanShared) Type() string { return "scan_shared" }

type CollabRequest struct {
	FromUserID      string    `json:"fromUserId"`
	FromDisplayName string    `json:"fromDisplayName"`
	RecipeID        string    `json:"recipeId"`
	Message         string    `json:"message"`
	At              time.Time `json:"at"`
}

func (CollabRequest) Type() string { return "collab_request" }

type StatusUpdated struct {
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	RecipeID    string    `json:"recipeId,omitempty"`
	CurrentStep int       `json:"currentStep,omitempty"`
	At          time.Time `json:"at"`
}

func (StatusUpdated) Type() string { return "status_updated" }

type Error struct {
	Message string `json:"message"`
}

func (Error) Type() string { return "error" }
