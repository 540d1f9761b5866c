package router

// Stack is a working copy of a back stack, root first.
// The reducer mutates a Stack; the live stack is only ever replaced as a
// whole by publishing a finished Stack.
type Stack[T comparable] struct {
	entries []T
}

// NewStack creates a Stack holding a copy of screens.
func NewStack[T comparable](screens ...T) *Stack[T] {
	entries := make([]T, len(screens), len(screens)+1)
	copy(entries, screens)
	return &Stack[T]{entries: entries}
}

// Push adds a screen to the top of the stack.
func (s *Stack[T]) Push(screen T) {
	s.entries = append(s.entries, screen)
}

// Pop removes and returns the top screen.
// Returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.entries) == 0 {
		var zero T
		return zero, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top screen without removing it.
// Returns false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.entries) == 0 {
		var zero T
		return zero, false
	}
	return s.entries[len(s.entries)-1], true
}

// SetTop overwrites the top screen, pushing it if the stack is empty.
func (s *Stack[T]) SetTop(screen T) {
	if len(s.entries) == 0 {
		s.entries = append(s.entries, screen)
		return
	}
	s.entries[len(s.entries)-1] = screen
}

// IndexOf returns the index of the first occurrence of screen scanning from
// the root, or -1.
func (s *Stack[T]) IndexOf(screen T) int {
	for i, e := range s.entries {
		if e == screen {
			return i
		}
	}
	return -1
}

// Truncate keeps the first n screens. It is a no-op when n >= Len.
func (s *Stack[T]) Truncate(n int) {
	if n <= 0 {
		s.Clear()
		return
	}
	if n >= len(s.entries) {
		return
	}
	clear(s.entries[n:])
	s.entries = s.entries[:n]
}

// KeepTop drops everything below the top screen.
func (s *Stack[T]) KeepTop() {
	top, ok := s.Peek()
	if !ok || len(s.entries) == 1 {
		return
	}
	clear(s.entries)
	s.entries = append(s.entries[:0], top)
}

// IsEmpty returns true if the stack has no screens.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of screens in the stack.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// Screens returns a copy of the stack contents, root first.
func (s *Stack[T]) Screens() []T {
	out := make([]T, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear removes all screens from the stack.
func (s *Stack[T]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
