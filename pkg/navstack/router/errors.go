package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for router operations.
var (
	// ErrEmptyOperation is returned by operations that need at least one
	// screen and received none. It is the only error a Router operation
	// surfaces to its caller.
	ErrEmptyOperation = errors.New("operation requires at least one screen")

	// ErrMalformedCommand is matched by every MalformedCommandError.
	ErrMalformedCommand = errors.New("malformed command")

	// ErrQueueClosed is returned by Flush after the router has been closed.
	ErrQueueClosed = errors.New("command queue closed")
)

// MalformedCommandError reports a command that could not be reduced.
// The command is skipped; the rest of its batch still applies.
type MalformedCommandError struct {
	Index int  // Position of the command within its batch
	Kind  Kind // Kind of the offending command
	Err   error
}

func (e *MalformedCommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("router: command %d (%s): %v", e.Index, e.Kind, e.Err)
	}
	return fmt.Sprintf("router: command %d (%s): %v", e.Index, e.Kind, ErrMalformedCommand)
}

func (e *MalformedCommandError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrMalformedCommand regardless of the wrapped cause.
func (e *MalformedCommandError) Is(target error) bool {
	return target == ErrMalformedCommand
}

// IsMalformedCommand checks if err is or wraps a MalformedCommandError.
func IsMalformedCommand(err error) bool {
	var mc *MalformedCommandError
	return errors.As(err, &mc)
}
