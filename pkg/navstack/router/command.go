package router

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// Kind identifies which navigation intent a Command carries.
// The zero value is not a valid Kind.
type Kind int

const (
	KindPush           Kind = iota + 1 // Append a screen to the top
	KindReplaceCurrent                 // Overwrite the top screen
	KindPop                            // Remove the top screen
	KindPopTo                          // Remove every screen above a target
	KindResetToRoot                    // Keep only the root screen
	KindDropStack                      // Keep only the top screen, then request host back
)

// String returns the lower camel name of the kind as used in logs.
func (k Kind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindReplaceCurrent:
		return "replaceCurrent"
	case KindPop:
		return "pop"
	case KindPopTo:
		return "popTo"
	case KindResetToRoot:
		return "resetToRoot"
	case KindDropStack:
		return "dropStack"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// hasScreen reports whether commands of this kind carry a target screen.
func (k Kind) hasScreen() bool {
	return k == KindPush || k == KindReplaceCurrent || k == KindPopTo
}

// Command is a single navigation intent. Commands are values; build them with
// Push, ReplaceCurrent, Pop, PopTo, ResetToRoot and DropStack.
//
// Screen is only meaningful for KindPush, KindReplaceCurrent and KindPopTo.
type Command[T comparable] struct {
	Kind   Kind
	Screen T
}

// Push appends screen to the top of the stack.
func Push[T comparable](screen T) Command[T] {
	return Command[T]{Kind: KindPush, Screen: screen}
}

// ReplaceCurrent overwrites the top of the stack with screen.
// On an empty stack it behaves like Push.
func ReplaceCurrent[T comparable](screen T) Command[T] {
	return Command[T]{Kind: KindReplaceCurrent, Screen: screen}
}

// Pop removes the top screen, or requests host back when it cannot.
func Pop[T comparable]() Command[T] {
	return Command[T]{Kind: KindPop}
}

// PopTo removes every screen above the first occurrence of screen.
// If screen is absent, every screen except the root is removed.
func PopTo[T comparable](screen T) Command[T] {
	return Command[T]{Kind: KindPopTo, Screen: screen}
}

// ResetToRoot removes every screen except the root.
func ResetToRoot[T comparable]() Command[T] {
	return Command[T]{Kind: KindResetToRoot}
}

// DropStack collapses the stack to its current top screen and always
// requests host back afterwards.
func DropStack[T comparable]() Command[T] {
	return Command[T]{Kind: KindDropStack}
}

func (c Command[T]) String() string {
	if c.Kind.hasScreen() {
		return fmt.Sprintf("%s(%v)", c.Kind, c.Screen)
	}
	return c.Kind.String()
}

// Batch is an ordered group of commands applied as one atomic change.
// ID correlates the log lines of a batch from submission to application.
type Batch[T comparable] struct {
	ID       ulid.ULID
	Commands []Command[T]
}

// NewBatch copies cmds into a new batch with a fresh ID.
func NewBatch[T comparable](cmds ...Command[T]) Batch[T] {
	owned := make([]Command[T], len(cmds))
	copy(owned, cmds)

	return Batch[T]{
		ID:       ulid.Make(),
		Commands: owned,
	}
}

// Len returns the number of commands in the batch.
func (b Batch[T]) Len() int {
	return len(b.Commands)
}
