// Package terminal hosts a router in a bubbletea program. Stack changes are
// delivered to the model as messages, back keys pop the router, and a back
// request that reaches the root ends the program.
package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StackMsg carries a published back stack into the program.
type StackMsg[T comparable] struct {
	Stack []T
}

// HostBackMsg is sent when back navigation reaches the host.
type HostBackMsg struct{}

var (
	crumbStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeCrumbStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	separatorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bodyStyle        = lipgloss.NewStyle().Padding(1, 2)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Model[T comparable] struct {
	router *router.Router[T]
	keys   KeyMap
	stack  []T
	title  func(T) string
	body   func(T) string
	width  int
	done   bool
}

// ModelOption customises a Model.
type ModelOption[T comparable] func(*Model[T])

// WithTitle sets how a screen is named in the breadcrumb.
func WithTitle[T comparable](title func(T) string) ModelOption[T] {
	return func(m *Model[T]) {
		m.title = title
	}
}

// WithBody sets what is drawn for the top screen.
func WithBody[T comparable](body func(T) string) ModelOption[T] {
	return func(m *Model[T]) {
		m.body = body
	}
}

func NewModel[T comparable](r *router.Router[T], stack []T, keys KeyMap, opts ...ModelOption[T]) Model[T] {
	m := Model[T]{
		router: r,
		keys:   keys,
		stack:  stack,
		title:  func(s T) string { return fmt.Sprint(s) },
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model[T]) Init() tea.Cmd {
	return nil
}

func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m, m.pop()
		}

	case StackMsg[T]:
		m.stack = msg.Stack

	case HostBackMsg:
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// pop runs off the event loop so a navigator publishing back into the
// program never blocks it.
func (m Model[T]) pop() tea.Cmd {
	r := m.router
	return func() tea.Msg {
		r.Pop()
		return nil
	}
}

func (m Model[T]) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.breadcrumb())
	b.WriteString("\n")

	if len(m.stack) > 0 && m.body != nil {
		b.WriteString(bodyStyle.Width(max(m.width-4, 0)).Render(m.body(m.stack[len(m.stack)-1])))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf("%s %s • %s %s",
		m.keys.Back.Help().Key, m.keys.Back.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc)))
	return b.String()
}

func (m Model[T]) breadcrumb() string {
	if len(m.stack) == 0 {
		return crumbStyle.Render("(empty)")
	}

	crumbs := make([]string, len(m.stack))
	for i, s := range m.stack {
		if i == len(m.stack)-1 {
			crumbs[i] = activeCrumbStyle.Render(m.title(s))
		} else {
			crumbs[i] = crumbStyle.Render(m.title(s))
		}
	}
	return strings.Join(crumbs, separatorStyle.Render(" › "))
}

// Stack returns the stack the model last received.
func (m Model[T]) Stack() []T {
	return m.stack
}

// Run attaches a navigator over stack to r and runs a program until the user
// quits, back navigation reaches the root, or ctx is cancelled. The router
// is detached on return; later commands stay pending.
func Run[T comparable](ctx context.Context, r *router.Router[T], stack *router.BackStack[T], cfg navstack.TerminalConfig, opts []ModelOption[T], navOpts ...router.NavigatorOption) error {
	model := NewModel(r, stack.Snapshot(), NewKeyMap(cfg), opts...)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	unsubscribe := stack.Subscribe(func(screens []T) {
		program.Send(StackMsg[T]{Stack: screens})
	})
	defer unsubscribe()

	r.Attach(router.NewNavigator(stack, func() {
		program.Send(HostBackMsg{})
	}, navOpts...))
	defer r.Detach()

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return navstack.NewInfrastructureError("run_terminal_program", err)
	}
	return nil
}
