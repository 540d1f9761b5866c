package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/platform/linuxinput"
	"github.com/BrandonKowalski/navstack/pkg/navstack/platform/sdlhost"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
)

func newWindowCommand(opts *Options) *cobra.Command {
	var (
		start        []string
		hardwareBack bool
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Browse a demo back stack in an SDL window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var runErr error
			sdl.Main(func() {
				runErr = runWindow(ctx, opts, toScreens(start), hardwareBack)
			})
			return runErr
		},
	}

	cmd.Flags().StringSliceVar(&start, "stack", []string{string(Home), string(Settings), string(Profile)}, "Initial back stack, root first")
	cmd.Flags().BoolVar(&hardwareBack, "hardware-back", false, "Also read the back button from the configured evdev device")

	return cmd
}

func runWindow(ctx context.Context, opts *Options, start []Screen, hardwareBack bool) error {
	logger := navstack.GetLogger()

	exec := sdlhost.NewExecutor()
	defer exec.Close()

	r := router.New[Screen](router.WithExecutor(exec), router.WithLogger(navstack.GetInternalLogger()))
	defer r.Close()

	host, err := sdlhost.Open[Screen](opts.config.Window, func(renderer *sdl.Renderer, stack []Screen) {
		drawStack(renderer, len(stack))
	})
	if err != nil {
		return err
	}
	defer host.Close()

	stack := router.NewBackStack(start...)
	stack.Subscribe(func(screens []Screen) {
		logger.Info("Back stack changed", "stack", breadcrumb(opts.catalog, screens))
	})
	host.Mount(r, stack, router.WithPopPolicy(opts.config.Policy()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if hardwareBack {
		listener := linuxinput.NewListener(opts.config.BackButton, r.Pop)
		go func() {
			if err := listener.Listen(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("Hardware back button unavailable", "error", err)
			}
		}()
	}

	return host.Run(ctx)
}

// drawStack paints one bar per screen so depth is visible without fonts.
func drawStack(renderer *sdl.Renderer, depth int) {
	const (
		barHeight = 24
		gap       = 8
	)
	for i := range depth {
		shade := uint8(80 + (i*40)%160)
		renderer.SetDrawColor(shade, shade/2, 200, 255)
		renderer.FillRect(&sdl.Rect{X: 32, Y: int32(32 + i*(barHeight+gap)), W: 320, H: barHeight})
	}
}
