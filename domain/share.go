package domain

import (
	"time"

	"github.com/google/uuid"
)

// LiveShare is an ephemeral social event: a recipe shared to the live feed.
// It is broadcast once and persisted best-effort; it carries no invariants
// and is not part of any session state.
type LiveShare struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	RecipeID    string    `json:"recipeId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
