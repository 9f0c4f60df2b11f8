package errors

import "fmt"

var (
	ErrMissingToken    = fmt.Errorf("authorization token is missing")
	ErrInvalidToken    = fmt.Errorf("invalid or expired token")
	ErrRecipeNotFound  = fmt.Errorf("recipe not found")
	ErrSessionNotFound = fmt.Errorf("session not found")
	ErrNotHost         = fmt.Errorf("only the host can update the step")
	ErrNegativeStep    = fmt.Errorf("step cannot be negative")
	ErrUnknownCommand  = fmt.Errorf("unknown command type")
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrEmptyWords      = fmt.Errorf("no words have been found")
)
