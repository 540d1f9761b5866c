package router

import (
	"context"
	"log/slog"

	"go.uber.org/atomic"
)

// CommandQueue hands batches to the attached Navigator and buffers them
// while none is attached.
//
// Thread Safety:
//   - Submit, Attach and Detach may be called from any goroutine
//   - The navigator slot and the pending buffer are only touched on the
//     executor, so buffering, draining and applying never interleave
//   - Batches apply in submission order across all callers
type CommandQueue[T comparable] struct {
	exec   Executor
	logger *slog.Logger

	// Executor-owned.
	navigator Navigator[T]
	pending   []Batch[T]

	attached     *atomic.Bool
	pendingCount *atomic.Int64
	applied      *atomic.Uint64
}

// NewCommandQueue creates a detached queue running on exec.
func NewCommandQueue[T comparable](exec Executor, logger *slog.Logger) *CommandQueue[T] {
	return &CommandQueue[T]{
		exec:         exec,
		logger:       logger,
		attached:     atomic.NewBool(false),
		pendingCount: atomic.NewInt64(0),
		applied:      atomic.NewUint64(0),
	}
}

// Submit applies batch on the attached navigator, or buffers it.
// It never blocks and never reports the outcome.
func (q *CommandQueue[T]) Submit(batch Batch[T]) {
	q.exec.Dispatch(func() {
		if q.navigator != nil {
			q.apply(q.navigator, batch)
			return
		}

		q.pending = append(q.pending, batch)
		q.pendingCount.Inc()
		q.logger.Debug("Buffered navigation batch",
			"batch", batch.ID.String(),
			"commands", batch.Len(),
			"pending", len(q.pending))
	})
}

// Attach registers nav, replacing any current navigator, and applies the
// buffered batches to it in submission order. Batches submitted after
// Attach apply after the buffered ones.
func (q *CommandQueue[T]) Attach(nav Navigator[T]) {
	q.exec.Dispatch(func() {
		q.navigator = nav
		q.attached.Store(true)
		q.logger.Debug("Navigator attached")

		if len(q.pending) == 0 {
			return
		}

		drain := q.pending
		q.pending = nil
		q.pendingCount.Store(0)

		q.logger.Info("Draining buffered navigation batches", "count", len(drain))
		for _, batch := range drain {
			q.apply(nav, batch)
		}
	})
}

// Detach clears the navigator. Later batches are buffered again; batches
// already buffered are kept.
func (q *CommandQueue[T]) Detach() {
	q.exec.Dispatch(func() {
		q.navigator = nil
		q.attached.Store(false)
		q.logger.Debug("Navigator detached", "pending", len(q.pending))
	})
}

// apply runs on the executor. Host back is dispatched once per batch, as a
// separate task, so stack observers react to the published stack before
// the host gets a chance to tear itself down.
func (q *CommandQueue[T]) apply(nav Navigator[T], batch Batch[T]) {
	hostBack := nav.ApplyCommands(batch)
	q.applied.Inc()

	if hostBack {
		q.logger.Debug("Dispatching host back", "batch", batch.ID.String())
		q.exec.Dispatch(nav.Back)
	}
}

// Attached reports whether a navigator is registered. The answer may be
// stale by the time it is read.
func (q *CommandQueue[T]) Attached() bool {
	return q.attached.Load()
}

// Pending returns the number of buffered batches.
func (q *CommandQueue[T]) Pending() int {
	return int(q.pendingCount.Load())
}

// Applied returns the number of batches handed to a navigator so far.
func (q *CommandQueue[T]) Applied() uint64 {
	return q.applied.Load()
}

// Flush waits until every batch submitted before the call has been applied
// or buffered, and any host back those batches requested has run.
// Must not be called from a navigation task, subscriber or back callback.
func (q *CommandQueue[T]) Flush(ctx context.Context) error {
	done := make(chan struct{})

	// Two hops: the first lands behind every earlier submission, the second
	// behind the host back tasks those submissions dispatched.
	q.exec.Dispatch(func() {
		q.exec.Dispatch(func() {
			close(done)
		})
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
