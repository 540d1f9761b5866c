package router

import (
	"errors"
	"fmt"
	"strings"
)

// PopPolicy decides when Pop gives up and requests host back navigation.
type PopPolicy int

const (
	// PopAtRoot never removes the last screen: Pop on a stack of one or
	// zero screens leaves it unchanged and requests host back.
	PopAtRoot PopPolicy = iota
	// PopToEmpty lets Pop remove the last screen and only requests host
	// back when the stack is already empty.
	PopToEmpty
)

func (p PopPolicy) String() string {
	switch p {
	case PopAtRoot:
		return "root"
	case PopToEmpty:
		return "empty"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePopPolicy parses "root" or "empty". An empty string means PopAtRoot.
func ParsePopPolicy(raw string) (PopPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "root":
		return PopAtRoot, nil
	case "empty":
		return PopToEmpty, nil
	default:
		return PopAtRoot, fmt.Errorf("router: unknown pop policy %q", raw)
	}
}

// Reduce applies a single command to a copy of stack using the PopAtRoot
// policy. It returns the new stack and whether host back was requested.
// On error the returned stack equals the input.
func Reduce[T comparable](stack []T, cmd Command[T]) ([]T, bool, error) {
	work := NewStack(stack...)
	hostBack, err := reduce(PopAtRoot, work, cmd)
	if err != nil {
		return work.Screens(), false, &MalformedCommandError{Kind: cmd.Kind, Err: err}
	}
	return work.Screens(), hostBack, nil
}

// ReduceBatch threads a copy of stack through cmds in order. Host back
// requests are OR-ed across the batch. A command that cannot be reduced is
// skipped and reported in the joined error; the commands after it still
// apply, and the returned stack is always usable.
func ReduceBatch[T comparable](policy PopPolicy, stack []T, cmds []Command[T]) ([]T, bool, error) {
	work := NewStack(stack...)

	var (
		hostBack bool
		errs     []error
	)
	for i, cmd := range cmds {
		back, err := reduce(policy, work, cmd)
		if err != nil {
			errs = append(errs, &MalformedCommandError{Index: i, Kind: cmd.Kind, Err: err})
			continue
		}
		hostBack = hostBack || back
	}

	return work.Screens(), hostBack, errors.Join(errs...)
}

// reduce mutates work only after every step that can fail has passed, so a
// failed command leaves work untouched.
func reduce[T comparable](policy PopPolicy, work *Stack[T], cmd Command[T]) (hostBack bool, err error) {
	defer func() {
		// Comparing interface-typed screens with uncomparable dynamic
		// values panics inside IndexOf.
		if r := recover(); r != nil {
			hostBack = false
			err = fmt.Errorf("%w: %v", ErrMalformedCommand, r)
		}
	}()

	switch cmd.Kind {
	case KindPush:
		work.Push(cmd.Screen)
		return false, nil

	case KindReplaceCurrent:
		work.SetTop(cmd.Screen)
		return false, nil

	case KindPop:
		return pop(policy, work)

	case KindPopTo:
		idx := work.IndexOf(cmd.Screen)
		if idx == -1 {
			work.Truncate(1)
		} else {
			work.Truncate(idx + 1)
		}
		return false, nil

	case KindResetToRoot:
		work.Truncate(1)
		return false, nil

	case KindDropStack:
		work.KeepTop()
		return true, nil

	default:
		return false, fmt.Errorf("%w: unknown kind %d", ErrMalformedCommand, int(cmd.Kind))
	}
}

func pop[T comparable](policy PopPolicy, work *Stack[T]) (bool, error) {
	switch policy {
	case PopAtRoot:
		if work.Len() <= 1 {
			return true, nil
		}
	case PopToEmpty:
		if work.IsEmpty() {
			return true, nil
		}
	default:
		return false, fmt.Errorf("%w: unknown pop policy %d", ErrMalformedCommand, int(policy))
	}
	work.Pop()
	return false, nil
}
