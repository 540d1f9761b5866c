// Package sdlhost runs a router inside an SDL window. Back input from the
// keyboard or a game controller pops the router, and a back request that
// reaches the root closes the window.
//
// Everything here must run inside sdl.Main:
//
//	sdl.Main(func() {
//		exec := sdlhost.NewExecutor()
//		r := router.New[Screen](router.WithExecutor(exec))
//
//		host, err := sdlhost.Open[Screen](cfg.Window, draw)
//		...
//		host.Mount(r, router.NewBackStack(Home))
//		err = host.Run(ctx)
//		host.Close()
//		exec.Close()
//	})
package sdlhost

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// DrawFunc paints the current stack. The renderer is cleared before and
// presented after the call.
type DrawFunc[T comparable] func(renderer *sdl.Renderer, stack []T)

type Host[T comparable] struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	draw     DrawFunc[T]
	logger   *slog.Logger

	router      *router.Router[T]
	stack       *router.BackStack[T]
	unsubscribe func()

	controllers map[sdl.JoystickID]*sdl.GameController
	dirty       *atomic.Bool
	quit        *atomic.Bool
	frameDelay  time.Duration
}

// Open creates the window on the main thread.
func Open[T comparable](cfg navstack.WindowConfig, draw DrawFunc[T]) (*Host[T], error) {
	var (
		window   *sdl.Window
		renderer *sdl.Renderer
		err      error
	)
	sdl.Do(func() { window, renderer, err = openWindow(cfg) })
	if err != nil {
		return nil, err
	}

	return &Host[T]{
		window:      window,
		renderer:    renderer,
		draw:        draw,
		logger:      navstack.GetInternalLogger(),
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		dirty:       atomic.NewBool(true),
		quit:        atomic.NewBool(false),
		frameDelay:  constants.DefaultFrameDelayMsec * time.Millisecond,
	}, nil
}

// Mount attaches a navigator over stack to r. A back request the stack
// cannot absorb closes the window.
func (h *Host[T]) Mount(r *router.Router[T], stack *router.BackStack[T], opts ...router.NavigatorOption) {
	h.router = r
	h.stack = stack
	h.unsubscribe = stack.Subscribe(func([]T) { h.dirty.Store(true) })
	h.dirty.Store(true)

	r.Attach(router.NewNavigator(stack, h.HostBack, opts...))
}

// HostBack asks the event loop to stop. It runs on the navigation executor,
// which is already on the main thread, so it only queues an event.
func (h *Host[T]) HostBack() {
	h.logger.Debug("Back navigation reached the host, closing window")
	if _, err := sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT, Timestamp: sdl.GetTicks()}); err != nil {
		h.logger.Warn("Unable to queue quit event", "error", err)
		h.quit.Store(true)
	}
}

// Run pumps SDL events and redraws on stack changes until the window is
// closed or ctx is cancelled.
func (h *Host[T]) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		sdl.Do(h.frame)

		if h.quit.Load() {
			return nil
		}

		time.Sleep(h.frameDelay)
	}
}

func (h *Host[T]) frame() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		h.handleEvent(event)
	}

	if h.dirty.CompareAndSwap(true, false) {
		h.render()
	}
}

func (h *Host[T]) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		h.quit.Store(true)

	case *sdl.ControllerDeviceEvent:
		h.handleControllerDevice(e)

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_EXPOSED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			h.dirty.Store(true)
		}

	default:
		if isBackEvent(event) && h.router != nil {
			h.router.Pop()
		}
	}
}

func (h *Host[T]) handleControllerDevice(e *sdl.ControllerDeviceEvent) {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		controller := sdl.GameControllerOpen(int(e.Which))
		if controller == nil {
			h.logger.Warn("Unable to open game controller", "index", e.Which)
			return
		}
		id := controller.Joystick().InstanceID()
		h.controllers[id] = controller
		h.logger.Debug("Game controller connected", "name", controller.Name(), "id", id)

	case sdl.CONTROLLERDEVICEREMOVED:
		if controller, ok := h.controllers[sdl.JoystickID(e.Which)]; ok {
			controller.Close()
			delete(h.controllers, sdl.JoystickID(e.Which))
			h.logger.Debug("Game controller disconnected", "id", e.Which)
		}
	}
}

func (h *Host[T]) render() {
	h.renderer.SetDrawColor(0, 0, 0, 255)
	h.renderer.Clear()
	if h.draw != nil && h.stack != nil {
		h.draw(h.renderer, h.stack.Snapshot())
	}
	h.renderer.Present()
}

// Close detaches from the router and destroys the window. Commands sent
// after Close stay pending on the router.
func (h *Host[T]) Close() {
	if h.router != nil {
		h.router.Detach()
	}
	if h.unsubscribe != nil {
		h.unsubscribe()
	}

	sdl.Do(func() {
		for id, controller := range h.controllers {
			controller.Close()
			delete(h.controllers, id)
		}
		h.renderer.Destroy()
		h.window.Destroy()
		sdl.Quit()
	})
}

// isBackEvent reports whether event is a back press: Escape or the Android
// back key on a keyboard, or B on a game controller.
func isBackEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.State != sdl.PRESSED || e.Repeat != 0 {
			return false
		}
		return e.Keysym.Sym == sdl.K_ESCAPE || e.Keysym.Sym == sdl.K_AC_BACK
	case *sdl.ControllerButtonEvent:
		return e.State == sdl.PRESSED && sdl.GameControllerButton(e.Button) == sdl.CONTROLLER_BUTTON_B
	default:
		return false
	}
}
