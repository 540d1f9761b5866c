package router

import (
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// Executor runs navigation work one task at a time, in the order tasks were
// dispatched. Dispatch must not block the caller.
type Executor interface {
	Dispatch(task func())
}

// NewInlineExecutor returns an Executor that runs tasks on the dispatching
// goroutine, queueing tasks dispatched while another one is running.
// Useful when callers already live on the UI thread, and in tests.
func NewInlineExecutor() Executor {
	return internal.NewInline()
}

// Option configures a Router.
type Option func(*routerOptions)

type routerOptions struct {
	executor Executor
	logger   *slog.Logger
}

// WithExecutor sets the executor all queue work runs on. By default each
// Router starts its own serial executor, stopped by Close.
//
// Example:
//
//	r := router.New[Screen](router.WithExecutor(router.NewInlineExecutor()))
func WithExecutor(executor Executor) Option {
	return func(o *routerOptions) {
		o.executor = executor
	}
}

// WithLogger sets the logger for queue events. Defaults to the navstack
// internal logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *routerOptions) {
		o.logger = logger
	}
}

// NavigatorOption configures a StackNavigator.
type NavigatorOption func(*navigatorOptions)

type navigatorOptions struct {
	policy PopPolicy
	logger *slog.Logger
}

// WithPopPolicy sets when Pop requests host back. Defaults to PopAtRoot.
func WithPopPolicy(policy PopPolicy) NavigatorOption {
	return func(o *navigatorOptions) {
		o.policy = policy
	}
}

// WithNavigatorLogger sets the logger used to report skipped commands.
func WithNavigatorLogger(logger *slog.Logger) NavigatorOption {
	return func(o *navigatorOptions) {
		o.logger = logger
	}
}
