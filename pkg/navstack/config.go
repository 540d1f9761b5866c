package navstack

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration, decoded from TOML.
//
//	log_level  = "debug"
//	pop_policy = "root"
//
//	[back_button]
//	device_path = "/dev/input/event1"
//	codes       = [1, 158]
//	cooldown    = "300ms"
type Config struct {
	LogLevel   string           `toml:"log_level"`
	LogPath    string           `toml:"log_path"`
	PopPolicy  string           `toml:"pop_policy"`
	BackButton BackButtonConfig `toml:"back_button"`
	Terminal   TerminalConfig   `toml:"terminal"`
	Window     WindowConfig     `toml:"window"`

	// UnknownKeys lists keys in the file that matched no field. LoadConfig
	// runs before logging is set up, so callers log them after Init.
	UnknownKeys []string `toml:"-"`
}

// BackButtonConfig describes a hardware back button read through evdev.
type BackButtonConfig struct {
	DevicePath string   `toml:"device_path"`
	Codes      []uint16 `toml:"codes"`    // evdev key codes that mean "back"
	Cooldown   Duration `toml:"cooldown"` // presses closer together are ignored
}

// TerminalConfig holds key bindings for the terminal host.
type TerminalConfig struct {
	BackKeys []string `toml:"back_keys"`
	QuitKeys []string `toml:"quit_keys"`
}

// WindowConfig configures the SDL host window.
type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Resizable  bool   `toml:"resizable"`
	Borderless bool   `toml:"borderless"`
	Fullscreen bool   `toml:"fullscreen"`
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		PopPolicy: router.PopAtRoot.String(),
		BackButton: BackButtonConfig{
			DevicePath: constants.DefaultInputDevice,
			Codes:      []uint16{constants.DefaultBackKeyCode},
			Cooldown:   Duration{constants.DefaultBackCooldown},
		},
		Terminal: TerminalConfig{
			BackKeys: []string{"esc", "backspace"},
			QuitKeys: []string{"ctrl+c", "q"},
		},
		Window: WindowConfig{
			Title:     "navstack",
			Width:     constants.DefaultWindowWidth,
			Height:    constants.DefaultWindowHeight,
			Resizable: true,
		},
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig. A missing
// file is not an error. Environment overrides are applied last.
//
// LoadConfig does not log, so a log_path in the file still takes effect
// when the result is passed to Init.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		default:
			for _, key := range md.Undecoded() {
				cfg.UnknownKeys = append(cfg.UnknownKeys, key.String())
			}
		}
	}

	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(constants.LogPathEnvVar); v != "" {
		cfg.LogPath = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports values that decoded but cannot be used.
func (c Config) Validate() error {
	if _, err := router.ParsePopPolicy(c.PopPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.BackButton.Cooldown.Duration < 0 {
		return fmt.Errorf("%w: negative back_button.cooldown", ErrInvalidConfig)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: negative window size", ErrInvalidConfig)
	}
	return nil
}

// Policy returns the configured pop policy, PopAtRoot if it is invalid.
func (c Config) Policy() router.PopPolicy {
	policy, _ := router.ParsePopPolicy(c.PopPolicy)
	return policy
}

// Options returns the Init options described by the config.
func (c Config) Options() Options {
	return Options{
		LogPath:  c.LogPath,
		LogLevel: c.LogLevel,
	}
}
