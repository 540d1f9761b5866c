// Package router turns navigation intents into a new back stack.
//
// Application code talks to a Router. Each Router operation becomes a batch
// of Commands, submitted to a CommandQueue. The queue hands batches to the
// attached Navigator, or buffers them while no navigator exists (before the
// UI is up, during a configuration change) and flushes them in order as soon
// as one is attached.
//
// A Navigator owns the live stack. StackNavigator reduces each batch against
// a private copy of the stack, publishes the result to its Store in one
// Swap, and reports whether the host's own back action should run. The
// queue then dispatches that back action as a separate task, so stack
// observers always see the new stack first.
//
// # Basic Usage
//
//	// Define screen identifiers
//	type Screen string
//
//	const (
//	    ScreenHome   Screen = "home"
//	    ScreenDetail Screen = "detail"
//	)
//
//	r := router.New[Screen]()
//	defer r.Close()
//
//	// Safe before any UI exists: the batch is buffered
//	_ = r.Push(ScreenDetail)
//
//	// When the host mounts
//	stack := router.NewBackStack(ScreenHome)
//	stack.Subscribe(func(screens []Screen) { render(screens) })
//	r.Attach(router.NewNavigator(stack, closeWindow))
//
//	// When the host unmounts
//	r.Detach()
//
// # Back Navigation
//
// Pop never empties the stack: popping the root leaves it in place and asks
// the host to go back instead (close the window, exit the app). DropStack
// always asks, after collapsing the stack to its top screen. Nested flows
// wire their navigator's back action to the parent with ParentBack, so
// leaving the child pops the parent.
//
// # Ordering
//
// All queue work runs on a single Executor. Batches apply in submission
// order, commands within a batch in array order, and buffered batches are
// never reordered against later ones.
package router
