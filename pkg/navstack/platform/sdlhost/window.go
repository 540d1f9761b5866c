package sdlhost

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// windowFlags converts the window config to SDL window flags.
func windowFlags(cfg navstack.WindowConfig) uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)

	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if cfg.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}

// windowSize picks the window size: config first, then the dev mode env
// overrides, then the defaults.
func windowSize(cfg navstack.WindowConfig) (int32, int32) {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = constants.DefaultWindowWidth
	}
	if height <= 0 {
		height = constants.DefaultWindowHeight
	}

	if !constants.IsDevMode() {
		return width, height
	}

	logger := navstack.GetInternalLogger()
	if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			width = int32(n)
		} else {
			logger.Warn("Invalid window width; using configured value", "value", v, "error", err)
		}
	}
	if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			height = int32(n)
		} else {
			logger.Warn("Invalid window height; using configured value", "value", v, "error", err)
		}
	}

	return width, height
}

// openWindow initializes SDL and creates the window and renderer.
// Must run on the main thread.
func openWindow(cfg navstack.WindowConfig) (*sdl.Window, *sdl.Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS); err != nil {
		return nil, nil, navstack.NewInfrastructureError("sdl_init", err)
	}

	width, height := windowSize(cfg)
	navstack.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, windowFlags(cfg))
	if err != nil {
		sdl.Quit()
		return nil, nil, navstack.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, nil, navstack.NewInfrastructureError("create_renderer", err)
	}

	renderer.SetLogicalSize(width, height)

	return window, renderer, nil
}
