package navstack

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidConfig indicates a configuration file that decoded but
	// carries values navstack cannot use.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InfrastructureError represents a failure of the host platform rather than
// of navigation itself (input device missing, SDL init failed, ...).
// Navigation state is unaffected; the host decides whether to continue.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "open_input_device", "sdl_init")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navstack: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navstack: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
