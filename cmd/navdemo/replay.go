package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// Script is a replay file:
//
//	initial = ["home"]
//
//	[[step]]
//	op      = "push"
//	screens = ["settings", "profile"]
//
//	[[step]]
//	op = "pop"
type Script struct {
	Initial   []string `toml:"initial"`
	PopPolicy string   `toml:"pop_policy"`
	Steps     []Step   `toml:"step"`
}

type Step struct {
	Op      string   `toml:"op"`
	Screens []string `toml:"screens"`
}

func (s Step) String() string {
	return strings.TrimSpace(s.Op + " " + strings.Join(s.Screens, " "))
}

func newReplayCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.toml>",
		Short: "Run a scripted sequence of navigation operations and print each stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var script Script
			if _, err := toml.DecodeFile(args[0], &script); err != nil {
				return fmt.Errorf("read script %s: %w", args[0], err)
			}

			policy := opts.config.Policy()
			if script.PopPolicy != "" {
				p, err := router.ParsePopPolicy(script.PopPolicy)
				if err != nil {
					return err
				}
				policy = p
			}

			return replay(cmd.Context(), cmd.OutOrStdout(), opts.catalog, policy, script)
		},
	}
}

// replay runs script against a fresh router. Stack changes and host back
// requests are printed from the navigation goroutine; every step is
// flushed before the next header is written.
func replay(ctx context.Context, out io.Writer, catalog *Catalog, policy router.PopPolicy, script Script) error {
	r := router.New[Screen](router.WithLogger(navstack.GetInternalLogger()))
	defer r.Close()

	stack := router.NewBackStack(toScreens(script.Initial)...)
	stack.Subscribe(func(screens []Screen) {
		fmt.Fprintf(out, "  %s\n", breadcrumb(catalog, screens))
	})

	nav := router.NewNavigator(stack, func() {
		fmt.Fprintf(out, "  %s\n", catalog.HostBack())
	}, router.WithPopPolicy(policy))
	r.Attach(nav)

	fmt.Fprintf(out, "  %s\n", breadcrumb(catalog, stack.Snapshot()))

	for i, step := range script.Steps {
		fmt.Fprintf(out, "> %s\n", step)

		if err := runStep(r, nav, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		if err := r.Flush(ctx); err != nil {
			return err
		}
	}

	if n := r.Pending(); n > 0 {
		fmt.Fprintf(out, "  %s\n", catalog.Pending(n))
	}
	return nil
}

func runStep(r *router.Router[Screen], nav router.Navigator[Screen], step Step) error {
	screens := toScreens(step.Screens)

	one := func() (Screen, error) {
		if len(screens) != 1 {
			return "", fmt.Errorf("expected exactly one screen, got %d", len(screens))
		}
		return screens[0], nil
	}

	switch step.Op {
	case "push":
		return r.Push(screens...)
	case "replace_current":
		s, err := one()
		if err != nil {
			return err
		}
		r.ReplaceCurrent(s)
	case "replace_stack":
		return r.ReplaceStack(screens...)
	case "clear_stack":
		r.ClearStack()
	case "drop_stack":
		r.DropStack()
	case "pop":
		r.Pop()
	case "pop_to":
		s, err := one()
		if err != nil {
			return err
		}
		r.PopTo(s)
	case "attach":
		r.Attach(nav)
	case "detach":
		r.Detach()
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	return nil
}

func breadcrumb(catalog *Catalog, screens []Screen) string {
	if len(screens) == 0 {
		return "(empty)"
	}
	titles := make([]string, len(screens))
	for i, s := range screens {
		titles[i] = catalog.Title(s)
	}
	return strings.Join(titles, " › ")
}
