package router

import (
	"slices"
	"sync"

	"go.uber.org/atomic"
)

// Store is the live backing store a navigator publishes into.
// Swap must replace the whole contents as one visible change.
type Store[T comparable] interface {
	Snapshot() []T
	Swap(screens []T)
}

// BackStack is an observable Store. Readers always see a complete stack;
// subscribers are told about every Swap, in order, after the new stack is
// visible through Snapshot.
type BackStack[T comparable] struct {
	current atomic.Pointer[[]T]

	// swapMu orders Swaps and their notifications.
	swapMu sync.Mutex

	mu   sync.Mutex
	subs []*subscriber[T]
}

type subscriber[T comparable] struct {
	fn func([]T)
}

// NewBackStack creates a BackStack holding a copy of screens.
func NewBackStack[T comparable](screens ...T) *BackStack[T] {
	b := &BackStack[T]{}
	initial := slices.Clone(screens)
	b.current.Store(&initial)
	return b
}

// Snapshot returns a copy of the current stack, root first.
func (b *BackStack[T]) Snapshot() []T {
	p := b.current.Load()
	if p == nil {
		return nil
	}
	return slices.Clone(*p)
}

// Len returns the number of screens in the current stack.
func (b *BackStack[T]) Len() int {
	p := b.current.Load()
	if p == nil {
		return 0
	}
	return len(*p)
}

// Top returns the screen on top of the current stack.
func (b *BackStack[T]) Top() (T, bool) {
	p := b.current.Load()
	if p == nil || len(*p) == 0 {
		var zero T
		return zero, false
	}
	return (*p)[len(*p)-1], true
}

// Swap replaces the stack with a copy of screens and notifies subscribers
// synchronously. Subscribers must not call Swap.
func (b *BackStack[T]) Swap(screens []T) {
	b.swapMu.Lock()
	defer b.swapMu.Unlock()

	next := slices.Clone(screens)
	b.current.Store(&next)

	b.mu.Lock()
	subs := slices.Clone(b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(slices.Clone(next))
	}
}

// Subscribe registers fn to be called with every new stack. The returned
// function removes the subscription; calling it more than once is safe.
func (b *BackStack[T]) Subscribe(fn func([]T)) (cancel func()) {
	s := &subscriber[T]{fn: fn}

	b.mu.Lock()
	b.subs = append(b.subs, s)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.subs = slices.DeleteFunc(b.subs, func(other *subscriber[T]) bool {
				return other == s
			})
		})
	}
}
