// Package constants defines shared constants, types, and configuration values
// used throughout navstack and its platform hosts.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by navstack.
const (
	LogLevelEnvVar     = "NAVSTACK_LOG_LEVEL"  // Overrides the application log level
	LogPathEnvVar      = "NAVSTACK_LOG_PATH"   // Overrides the log file path
	ConfigPathEnvVar   = "NAVSTACK_CONFIG"     // Default config file for CLIs
	WindowWidthEnvVar  = "NAVSTACK_WIN_WIDTH"  // Dev mode SDL window width
	WindowHeightEnvVar = "NAVSTACK_WIN_HEIGHT" // Dev mode SDL window height
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Platform hosts translate device events into VirtualButtons before deciding
// whether a press means "back".
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonBack
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// IsBack reports whether the button conventionally means "go back".
func (vb VirtualButton) IsBack() bool {
	return vb == VirtualButtonB || vb == VirtualButtonBack
}

// Defaults for hardware back button handling.
const (
	DefaultBackCooldown   = 250 * time.Millisecond // Minimum gap between two accepted presses
	DefaultInputDevice    = "/dev/input/event0"    // evdev device read when none is configured
	DefaultBackKeyCode    = 1                      // KEY_ESC
	DefaultWindowWidth    = 1024
	DefaultWindowHeight   = 768
	DefaultFrameDelayMsec = 16 // ~60 event pump iterations per second
)
