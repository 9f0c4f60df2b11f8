package domain

// Command is an intent dispatched by a connection to the coordinator.
// Commands are processed one at a time by a single owner; handlers never
// touch shared state directly.
type Command interface {
	Requester() string
}

type CreateSession struct {
	UserID   string
	RecipeID string
	Title    string
	IsPublic bool
}

func (c CreateSession) Requester() string { return c.UserID }

type JoinSession struct {
	UserID    string
	SessionID string
}

func (c JoinSession) Requester() string { return c.UserID }

type LeaveSession struct {
	UserID    string
	SessionID string
}

func (c LeaveSession) Requester() string { return c.UserID }

type UpdateStep struct {
	UserID    string
	SessionID string
	NewStep   int
	Notes     string
}

func (c UpdateStep) Requester() string { return c.UserID }

type PostMessage struct {
	UserID      string
	SessionID   string
	Message     string
	MessageType string
}

func (c PostMessage) Requester() string { return c.UserID }

type ShareRecipe struct {
	UserID      string
	RecipeID    string
	Title       string
	Description string
	Tags        []string
}

func (c ShareRecipe) Requester() string { return c.UserID }

type LikeShare struct {
	UserID  string
	ShareID string
}

func (c LikeShare) Requester() string { return c.UserID }

type CommentShare struct {
	UserID  string
	ShareID string
	Comment string
}

func (c CommentShare) Requester() string { return c.UserID }

type ShareScan struct {
	UserID      string
	Ingredients []string
	Confidence  float64
	ImageURL    string
}

func (c ShareScan) Requester() string { return c.UserID }

type RequestCollab struct {
	UserID       string
	TargetUserID string
	RecipeID     string
	Message      string
}

func (c RequestCollab) Requester() string { return c.UserID }

type UpdateStatus struct {
	UserID      string
	Status      string
	RecipeID    string
	CurrentStep int
}

func (c UpdateStatus) Requester() string { return c.UserID }
