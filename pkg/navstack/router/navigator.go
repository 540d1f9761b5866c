package router

import (
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// Navigator is the attachment point of a CommandQueue: it owns the live
// stack and knows how to perform host-level back navigation.
type Navigator[T comparable] interface {
	// ApplyCommands reduces batch against the live stack, publishes the
	// result as one change and reports whether host back was requested.
	ApplyCommands(batch Batch[T]) bool

	// Back performs host-level back navigation (close a window, exit a
	// nested container, ...).
	Back()
}

// StackNavigator is a Navigator over a Store.
type StackNavigator[T comparable] struct {
	store  Store[T]
	onBack func()
	policy PopPolicy
	logger *slog.Logger
}

// NewNavigator binds store and the host back callback. onBack may be nil
// for hosts without a platform back action.
func NewNavigator[T comparable](store Store[T], onBack func(), opts ...NavigatorOption) *StackNavigator[T] {
	o := navigatorOptions{policy: PopAtRoot}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.GetInternalLogger()
	}

	return &StackNavigator[T]{
		store:  store,
		onBack: onBack,
		policy: o.policy,
		logger: o.logger,
	}
}

func (n *StackNavigator[T]) ApplyCommands(batch Batch[T]) bool {
	next, hostBack, err := ReduceBatch(n.policy, n.store.Snapshot(), batch.Commands)
	if err != nil {
		n.logger.Warn("Skipped malformed navigation commands",
			"batch", batch.ID.String(),
			"error", err)
	}

	n.store.Swap(next)

	n.logger.Debug("Applied navigation batch",
		"batch", batch.ID.String(),
		"commands", batch.Len(),
		"stack_size", len(next),
		"host_back", hostBack)

	return hostBack
}

func (n *StackNavigator[T]) Back() {
	if n.onBack == nil {
		n.logger.Debug("Host back requested but no back action is bound")
		return
	}
	n.onBack()
}

// Store returns the store the navigator publishes into.
func (n *StackNavigator[T]) Store() Store[T] {
	return n.store
}

// Popper is anything with a Pop operation, typically a parent *Router.
type Popper interface {
	Pop()
}

// ParentBack returns a host back callback for a nested navigator that pops
// the parent router instead of invoking platform back navigation.
//
// Example:
//
//	child := router.NewNavigator(childStack, router.ParentBack(parentRouter))
func ParentBack(parent Popper) func() {
	return parent.Pop
}
