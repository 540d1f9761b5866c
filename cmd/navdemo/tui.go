package main

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/platform/terminal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/spf13/cobra"
)

func newTUICommand(opts *Options) *cobra.Command {
	var start []string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse a demo back stack in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := router.New[Screen](router.WithLogger(navstack.GetInternalLogger()))
			defer r.Close()

			stack := router.NewBackStack(toScreens(start)...)

			return terminal.Run(cmd.Context(), r, stack, opts.config.Terminal,
				[]terminal.ModelOption[Screen]{
					terminal.WithTitle(opts.catalog.Title),
					terminal.WithBody(opts.catalog.Body),
				},
				router.WithPopPolicy(opts.config.Policy()))
		},
	}

	cmd.Flags().StringSliceVar(&start, "stack", []string{string(Home), string(Settings), string(Profile), string(Detail)}, "Initial back stack, root first")

	return cmd
}
