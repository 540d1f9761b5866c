package router

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInlineRouter() *Router[string] {
	return New[string](WithExecutor(NewInlineExecutor()), WithLogger(discardLogger))
}

func TestRouterBatchComposition(t *testing.T) {
	r := newInlineRouter()
	nav := &recordingNavigator{}
	r.Attach(nav)

	require.NoError(t, r.Push("a", "b"))
	r.ReplaceCurrent("c")
	require.NoError(t, r.ReplaceStack("x", "y", "z"))
	r.ClearStack()
	r.DropStack()
	r.Pop()
	r.PopTo("x")
	r.Execute(Push("custom"), Pop[string]())
	r.Execute()

	assert.Equal(t, [][]Command[string]{
		{Push("a"), Push("b")},
		{ReplaceCurrent("c")},
		{ResetToRoot[string](), ReplaceCurrent("x"), Push("y"), Push("z")},
		{ResetToRoot[string]()},
		{DropStack[string]()},
		{Pop[string]()},
		{PopTo("x")},
		{Push("custom"), Pop[string]()},
	}, nav.commands())
}

func TestRouterEmptyOperation(t *testing.T) {
	r := newInlineRouter()
	nav := &recordingNavigator{}
	r.Attach(nav)

	assert.ErrorIs(t, r.Push(), ErrEmptyOperation)
	assert.ErrorIs(t, r.ReplaceStack(), ErrEmptyOperation)
	assert.Empty(t, nav.commands())
	assert.Equal(t, 0, r.Pending())
}

func TestRouterReplaceStackSingleScreen(t *testing.T) {
	r := newInlineRouter()
	stack := NewBackStack("home", "a", "b")
	r.Attach(NewNavigator(stack, nil, WithNavigatorLogger(discardLogger)))

	require.NoError(t, r.ReplaceStack("login"))
	assert.Equal(t, []string{"login"}, stack.Snapshot())
}

func TestRouterScenarios(t *testing.T) {
	type scenario struct {
		name      string
		initial   []string
		run       func(r *Router[string])
		want      []string
		wantBacks int
	}

	scenarios := []scenario{
		{
			name:    "push one then many",
			initial: []string{"Home"},
			run: func(r *Router[string]) {
				_ = r.Push("Detail1")
				_ = r.Push("Detail2", "Detail3")
			},
			want: []string{"Home", "Detail1", "Detail2", "Detail3"},
		},
		{
			name:    "pop to present screen",
			initial: []string{"Home", "A", "B", "C"},
			run:     func(r *Router[string]) { r.PopTo("A") },
			want:    []string{"Home", "A"},
		},
		{
			name:    "pop to absent screen",
			initial: []string{"Home", "A", "B"},
			run:     func(r *Router[string]) { r.PopTo("X") },
			want:    []string{"Home"},
		},
		{
			name:      "pop at root delegates to host",
			initial:   []string{"Home"},
			run:       func(r *Router[string]) { r.Pop() },
			want:      []string{"Home"},
			wantBacks: 1,
		},
		{
			name:      "drop stack keeps top and delegates",
			initial:   []string{"Home", "A", "B"},
			run:       func(r *Router[string]) { r.DropStack() },
			want:      []string{"B"},
			wantBacks: 1,
		},
		{
			name:    "clear stack",
			initial: []string{"Home", "A", "B"},
			run:     func(r *Router[string]) { r.ClearStack() },
			want:    []string{"Home"},
		},
		{
			name:    "replace current on empty stack",
			initial: nil,
			run:     func(r *Router[string]) { r.ReplaceCurrent("Home") },
			want:    []string{"Home"},
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			r := newInlineRouter()
			stack := NewBackStack(sc.initial...)
			backs := 0
			r.Attach(NewNavigator(stack, func() { backs++ }, WithNavigatorLogger(discardLogger)))

			sc.run(r)

			assert.Equal(t, sc.want, stack.Snapshot())
			assert.Equal(t, sc.wantBacks, backs)
		})
	}
}

func TestRouterBuffersUntilAttached(t *testing.T) {
	r := New[string](WithLogger(discardLogger))
	defer r.Close()

	require.NoError(t, r.Push("A"))
	require.NoError(t, r.Push("B"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Flush(ctx))
	assert.Equal(t, 2, r.Pending())
	assert.False(t, r.Attached())

	stack := NewBackStack("Home")
	r.Attach(NewNavigator(stack, nil, WithNavigatorLogger(discardLogger)))
	require.NoError(t, r.Push("C"))

	require.NoError(t, r.Flush(ctx))
	assert.Equal(t, []string{"Home", "A", "B", "C"}, stack.Snapshot())
	assert.Equal(t, 0, r.Pending())
	assert.True(t, r.Attached())
}

func TestRouterFlushWaitsForHostBack(t *testing.T) {
	r := New[string](WithLogger(discardLogger))
	defer r.Close()

	backs := make(chan struct{}, 1)
	r.Attach(NewNavigator(NewBackStack("Home"), func() {
		backs <- struct{}{}
	}, WithNavigatorLogger(discardLogger)))
	r.Pop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Flush(ctx))

	select {
	case <-backs:
	default:
		t.Fatal("host back did not run before Flush returned")
	}
}

func TestRouterClose(t *testing.T) {
	r := New[string](WithLogger(discardLogger))
	r.Close()
	r.Close()

	assert.ErrorIs(t, r.Flush(context.Background()), ErrQueueClosed)
}

func TestRouterRejectsOperationsAfterClose(t *testing.T) {
	r := New[string](WithExecutor(NewInlineExecutor()), WithLogger(discardLogger))
	stack := NewBackStack("Home", "A")
	r.Attach(NewNavigator(stack, nil, WithNavigatorLogger(discardLogger)))
	r.Close()

	assert.ErrorIs(t, r.Push("B"), ErrQueueClosed)
	assert.ErrorIs(t, r.ReplaceStack("Login"), ErrQueueClosed)
	assert.NotPanics(t, func() {
		r.Pop()
		r.Execute(Push("C"))
	})

	assert.Equal(t, []string{"Home", "A"}, stack.Snapshot())
	assert.Equal(t, 0, r.Pending())
}

func TestNavigatorPopPolicy(t *testing.T) {
	r := newInlineRouter()
	stack := NewBackStack("Home")
	backs := 0
	r.Attach(NewNavigator(stack, func() { backs++ },
		WithPopPolicy(PopToEmpty),
		WithNavigatorLogger(discardLogger)))

	r.Pop()
	assert.Empty(t, stack.Snapshot())
	assert.Equal(t, 0, backs)

	r.Pop()
	assert.Equal(t, 1, backs)
}

func TestNavigatorSkipsMalformedCommand(t *testing.T) {
	r := newInlineRouter()
	stack := NewBackStack("Home")
	r.Attach(NewNavigator(stack, nil, WithNavigatorLogger(discardLogger)))

	r.Execute(Push("A"), Command[string]{}, Push("B"))

	assert.Equal(t, []string{"Home", "A", "B"}, stack.Snapshot())
}

func TestNavigatorWithoutBackAction(t *testing.T) {
	r := newInlineRouter()
	stack := NewBackStack("Home")
	r.Attach(NewNavigator(stack, nil, WithNavigatorLogger(discardLogger)))

	assert.NotPanics(t, func() { r.Pop() })
	assert.Equal(t, []string{"Home"}, stack.Snapshot())
}

func TestParentBack(t *testing.T) {
	exec := NewInlineExecutor()

	parent := New[string](WithExecutor(exec), WithLogger(discardLogger))
	parentStack := NewBackStack("Home", "Nested")
	parentBacks := 0
	parent.Attach(NewNavigator(parentStack, func() { parentBacks++ }, WithNavigatorLogger(discardLogger)))

	child := New[string](WithExecutor(exec), WithLogger(discardLogger))
	childStack := NewBackStack("Inner", "Deeper")
	child.Attach(NewNavigator(childStack, ParentBack(parent), WithNavigatorLogger(discardLogger)))

	child.Pop()
	assert.Equal(t, []string{"Inner"}, childStack.Snapshot())
	assert.Equal(t, []string{"Home", "Nested"}, parentStack.Snapshot())

	child.DropStack()
	assert.Equal(t, []string{"Home"}, parentStack.Snapshot())

	child.Pop()
	assert.Equal(t, []string{"Home"}, parentStack.Snapshot())
	assert.Equal(t, 1, parentBacks)
}
