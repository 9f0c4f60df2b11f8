package ws

import (
	"cooksync/domain"
	"cooksync/errors"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Envelope is the tagged frame exchanged with clients, both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type createSessionPayload struct {
	RecipeID string `json:"recipeId" validate:"required"`
	Title    string `json:"title" validate:"max=200"`
	IsPublic bool   `json:"isPublic"`
}

type joinSessionPayload struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type leaveSessionPayload struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type updateStepPayload struct {
	SessionID string `json:"sessionId" validate:"required"`
	NewStep   int    `json:"newStep"`
	Notes     string `json:"notes" validate:"max=500"`
}

type sessionMessagePayload struct {
	SessionID   string `json:"sessionId" validate:"required"`
	Message     string `json:"message" validate:"required,max=2000"`
	MessageType string `json:"messageType" validate:"max=50"`
}

type shareRecipePayload struct {
	RecipeID    string   `json:"recipeId" validate:"required"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Tags        []string `json:"tags" validate:"max=10,dive,max=50"`
}

type likeSharePayload struct {
	ShareID string `json:"shareId" validate:"required"`
}

type commentSharePayload struct {
	ShareID string `json:"shareId" validate:"required"`
	Comment string `json:"comment" validate:"required,max=1000"`
}

type shareScanPayload struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,max=100"`
	Confidence  float64  `json:"confidence" validate:"gte=0,lte=1"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,url"`
}

type requestCollabPayload struct {
	TargetUserID string `json:"targetUserId" validate:"required"`
	RecipeID     string `json:"recipeId"`
	Message      string `json:"message" validate:"max=500"`
}

type updateStatusPayload struct {
	Status      string `json:"status" validate:"required,max=100"`
	RecipeID    string `json:"recipeId"`
	CurrentStep int    `json:"currentStep" validate:"gte=0"`
}

// Decode parses one inbound frame into a typed command on behalf of the
// authenticated user. A malformed or unknown frame yields an error and no
// command; the connection itself stays open.
func Decode(data []byte, userID string) (domain.Command, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}

	switch envelope.Type {
	case "create_session":
		var p createSessionPayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.CreateSession{UserID: userID, RecipeID: p.RecipeID, Title: p.Title, IsPublic: p.IsPublic}, nil

	case "join_session":
		var p joinSessionPayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.JoinSession{UserID: userID, SessionID: p.SessionID}, nil

	case "leave_session":
		var p leaveSessionPayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.LeaveSession{UserID: userID, SessionID: p.SessionID}, nil

	case "update_step":
		var p updateStepPayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.UpdateStep{UserID: userID, SessionID: p.SessionID, NewStep: p.NewStep, Notes: p.Notes}, nil

	case "session_message":
		var p sessionMessagePayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.PostMessage{UserID: userID, SessionID: p.SessionID, Message: p.Message, MessageType: p.MessageType}, nil

	case "share_recipe":
		var p shareRecipePayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.ShareRecipe{UserID: userID, RecipeID: p.RecipeID, Title: p.Title, Description: p.Description, Tags: p.Tags}, nil

	case "like_share":
		var p likeSharePayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.LikeShare{UserID: userID, ShareID: p.ShareID}, nil

	case "comment_share":
		var p commentSharePayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.CommentShare{UserID: userID, ShareID: p.ShareID, Comment: p.Comment}, nil

	case "share_scan":
		var p shareScanPayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.ShareScan{UserID: userID, Ingredients: p.Ingredients, Confidence: p.Confidence, ImageURL: p.ImageURL}, nil

	case "request_collab":
		var p requestCollabPayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.RequestCollab{UserID: userID, TargetUserID: p.TargetUserID, RecipeID: p.RecipeID, Message: p.Message}, nil

	case "update_status":
		var p updateStatusPayload
		if err := parse(envelope.Payload, &p); err != nil {
			return nil, err
		}
		return domain.UpdateStatus{UserID: userID, Status: p.Status, RecipeID: p.RecipeID, CurrentStep: p.CurrentStep}, nil

	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCommand, envelope.Type)
	}
}

func parse(payload json.RawMessage, target any) error {
	if len(payload) == 0 {
		return fmt.Errorf("missing payload")
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}
