package world

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Domain errors for world construction and stepping.
var (
	// ErrInvalidParameter indicates a body, attractor or world parameter
	// outside its valid range (degenerate shape, non-positive mass, ...).
	ErrInvalidParameter = errors.New("world: parameter out of valid range")

	// ErrInvalidState indicates the engine produced a NaN/Inf body state.
	ErrInvalidState = errors.New("world: engine step produced invalid state")
)

// StepError wraps an engine step failure with the body that went bad.
// Step errors are fatal: a corrupted physics state is not retried.
type StepError struct {
	Body    uuid.UUID
	Name    string
	Wrapped error
}

func (e *StepError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("step failed at body %q: %v", e.Name, e.Wrapped)
	}
	return fmt.Sprintf("step failed at body %s: %v", e.Body, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
