package router

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"go.uber.org/atomic"
)

// Router turns named navigation operations into command batches and hands
// them to its CommandQueue. Operations are fire-and-forget: they never
// return the resulting stack and only fail when a precondition is violated.
//
// T is the application's screen identifier. The router only compares
// screens for equality.
//
// After Close no batch is accepted: Push and ReplaceStack return
// ErrQueueClosed, the other operations log a warning and drop the batch.
type Router[T comparable] struct {
	queue  *CommandQueue[T]
	serial *internal.Serial // non-nil when the router owns its executor
	closed *atomic.Bool
	logger *slog.Logger
}

// New creates a detached Router.
func New[T comparable](opts ...Option) *Router[T] {
	o := routerOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.GetInternalLogger()
	}

	r := &Router[T]{
		closed: atomic.NewBool(false),
		logger: o.logger,
	}

	exec := o.executor
	if exec == nil {
		r.serial = internal.NewSerial(nil)
		exec = r.serial
	}
	r.queue = NewCommandQueue[T](exec, o.logger)

	return r
}

// Push appends screens to the stack in argument order, as one batch.
func (r *Router[T]) Push(screens ...T) error {
	if len(screens) == 0 {
		return fmt.Errorf("push: %w", ErrEmptyOperation)
	}

	cmds := make([]Command[T], 0, len(screens))
	for _, s := range screens {
		cmds = append(cmds, Push(s))
	}
	if err := r.submit(cmds); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// ReplaceCurrent replaces the top screen, or pushes screen onto an empty stack.
func (r *Router[T]) ReplaceCurrent(screen T) {
	r.Execute(ReplaceCurrent(screen))
}

// ReplaceStack replaces the whole stack: the root becomes screens[0] and
// the remaining screens are pushed above it.
func (r *Router[T]) ReplaceStack(screens ...T) error {
	if len(screens) == 0 {
		return fmt.Errorf("replace stack: %w", ErrEmptyOperation)
	}

	cmds := make([]Command[T], 0, len(screens)+1)
	cmds = append(cmds, ResetToRoot[T](), ReplaceCurrent(screens[0]))
	for _, s := range screens[1:] {
		cmds = append(cmds, Push(s))
	}
	if err := r.submit(cmds); err != nil {
		return fmt.Errorf("replace stack: %w", err)
	}
	return nil
}

// ClearStack removes every screen except the root.
func (r *Router[T]) ClearStack() {
	r.Execute(ResetToRoot[T]())
}

// DropStack keeps only the current screen and then requests host back.
// Use it to close a nested flow or the whole application.
func (r *Router[T]) DropStack() {
	r.Execute(DropStack[T]())
}

// Pop removes the top screen. When only the root is left, host back
// navigation is requested instead.
func (r *Router[T]) Pop() {
	r.Execute(Pop[T]())
}

// PopTo removes every screen above the first occurrence of screen, or every
// screen but the root if screen is not on the stack.
func (r *Router[T]) PopTo(screen T) {
	r.Execute(PopTo(screen))
}

// Execute submits cmds as a single batch. Custom operations built on top of
// Router use it directly. An empty call is ignored, as is any call after
// Close.
func (r *Router[T]) Execute(cmds ...Command[T]) {
	if len(cmds) == 0 {
		return
	}
	_ = r.submit(cmds)
}

func (r *Router[T]) submit(cmds []Command[T]) error {
	if r.closed.Load() {
		r.logger.Warn("Dropped navigation batch on closed router", "commands", len(cmds))
		return ErrQueueClosed
	}
	r.queue.Submit(NewBatch(cmds...))
	return nil
}

// Attach registers nav as the router's navigator and flushes buffered batches.
func (r *Router[T]) Attach(nav Navigator[T]) {
	r.queue.Attach(nav)
}

// Detach removes the current navigator. Later operations are buffered.
func (r *Router[T]) Detach() {
	r.queue.Detach()
}

// Attached reports whether a navigator is registered.
func (r *Router[T]) Attached() bool {
	return r.queue.Attached()
}

// Pending returns the number of batches waiting for a navigator.
func (r *Router[T]) Pending() int {
	return r.queue.Pending()
}


// Flush waits for every operation issued before the call to be applied or
// buffered. See CommandQueue.Flush.
func (r *Router[T]) Flush(ctx context.Context) error {
	if r.closed.Load() {
		return ErrQueueClosed
	}
	return r.queue.Flush(ctx)
}

// Close stops the router's own executor after running queued work and
// rejects later operations.
// Routers built WithExecutor leave the executor alone.
func (r *Router[T]) Close() {
	if !r.closed.CompareAndSwap(false, true) {
		return
	}
	if r.serial != nil {
		r.serial.Close()
	}
}
