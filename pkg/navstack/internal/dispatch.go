package internal

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Serial runs tasks one at a time, in submission order, on a dedicated
// goroutine. Dispatch never blocks the caller.
type Serial struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []func()
	closed bool
	done   chan struct{}
	run    func(func())
}

// NewSerial starts a Serial executor. If run is non-nil every task is
// handed to it instead of being called directly; platform hosts use this
// to hop onto their UI thread.
func NewSerial(run func(func())) *Serial {
	s := &Serial{
		done: make(chan struct{}),
		run:  run,
	}
	s.cond = sync.NewCond(&s.mu)

	go s.loop()

	return s
}

// Dispatch queues task. Tasks dispatched after Close are dropped.
func (s *Serial) Dispatch(task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		GetInternalLogger().Debug("Dropping task dispatched after close")
		return
	}
	s.tasks = append(s.tasks, task)
	s.cond.Signal()
}

// Close stops accepting tasks, runs the ones already queued and waits for
// the worker goroutine to exit.
func (s *Serial) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	s.cond.Signal()
	s.mu.Unlock()

	<-s.done
}

func (s *Serial) loop() {
	defer close(s.done)

	for {
		s.mu.Lock()
		for len(s.tasks) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.tasks) == 0 {
			s.mu.Unlock()
			return
		}
		task := s.tasks[0]
		s.tasks[0] = nil
		s.tasks = s.tasks[1:]
		s.mu.Unlock()

		if s.run != nil {
			s.run(func() { runTask(task) })
		} else {
			runTask(task)
		}
	}
}

// Inline runs tasks on the dispatching goroutine. A task dispatched while
// another is running, from any goroutine, is queued and run by the
// goroutine already draining, so tasks never nest and never overlap.
type Inline struct {
	mu      sync.Mutex
	tasks   []func()
	running bool
}

// NewInline creates an Inline executor.
func NewInline() *Inline {
	return &Inline{}
}

// Dispatch queues task and drains the queue unless a drain is in progress.
func (e *Inline) Dispatch(task func()) {
	e.mu.Lock()
	e.tasks = append(e.tasks, task)
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true

	for len(e.tasks) > 0 {
		next := e.tasks[0]
		e.tasks[0] = nil
		e.tasks = e.tasks[1:]
		e.mu.Unlock()

		runTask(next)

		e.mu.Lock()
	}
	e.running = false
	e.mu.Unlock()
}

// runTask keeps a panicking task from taking the executor down with it.
func runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			GetInternalLogger().Error("Navigation task panicked",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
		}
	}()
	task()
}
