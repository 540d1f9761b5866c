// Package linuxinput turns a hardware back button, read from a Linux evdev
// input device, into router back navigation.
package linuxinput

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// keyPressed is the event value the kernel reports on key down; 0 is
// release and 2 is autorepeat.
const keyPressed = 1

// eventReader is the part of *evdev.InputDevice the listener uses.
type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Listener calls onBack for every accepted back button press.
type Listener struct {
	devicePath string
	codes      map[evdev.EvCode]struct{}
	cooldown   time.Duration
	onBack     func()
	logger     *slog.Logger

	now       func() time.Time
	lastPress time.Time
	presses   *atomic.Int64
}

// NewListener creates a listener for cfg. onBack is usually a router's Pop.
// With no codes configured, any key that maps to a back VirtualButton counts.
func NewListener(cfg navstack.BackButtonConfig, onBack func()) *Listener {
	codes := make(map[evdev.EvCode]struct{}, len(cfg.Codes))
	for _, c := range cfg.Codes {
		codes[evdev.EvCode(c)] = struct{}{}
	}

	devicePath := cfg.DevicePath
	if devicePath == "" {
		devicePath = constants.DefaultInputDevice
	}

	return &Listener{
		devicePath: devicePath,
		codes:      codes,
		cooldown:   cfg.Cooldown.Duration,
		onBack:     onBack,
		logger:     navstack.GetInternalLogger(),
		now:        time.Now,
		presses:    atomic.NewInt64(0),
	}
}

// Listen opens the device and handles events until ctx is cancelled.
func (l *Listener) Listen(ctx context.Context) error {
	dev, err := evdev.Open(l.devicePath)
	if err != nil {
		return navstack.NewInfrastructureError("open_input_device", err)
	}

	if name, err := dev.Name(); err == nil {
		l.logger.Debug("Listening for back button", "device", l.devicePath, "name", name)
	}

	return l.run(ctx, dev)
}

func (l *Listener) run(ctx context.Context, dev eventReader) error {
	stop := make(chan struct{})
	closed := make(chan struct{})

	// Closing the device is the only way to unblock ReadOne.
	go func() {
		defer close(closed)
		select {
		case <-ctx.Done():
		case <-stop:
		}
		dev.Close()
	}()
	defer func() {
		close(stop)
		<-closed
	}()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return navstack.NewInfrastructureError("read_input_event", err)
		}
		l.handle(ev)
	}
}

// handle reports whether ev fired the back action.
func (l *Listener) handle(ev *evdev.InputEvent) bool {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != keyPressed {
		return false
	}
	if !l.isBack(ev.Code) {
		return false
	}

	now := l.now()
	if !l.lastPress.IsZero() && now.Sub(l.lastPress) < l.cooldown {
		l.logger.Debug("Ignoring back press inside cooldown",
			"code", int(ev.Code),
			"button", VirtualButton(ev.Code).GetName())
		return false
	}
	l.lastPress = now
	l.presses.Inc()
	l.logger.Debug("Back button pressed", "code", int(ev.Code), "button", VirtualButton(ev.Code).GetName())

	if l.onBack != nil {
		l.onBack()
	}
	return true
}

func (l *Listener) isBack(code evdev.EvCode) bool {
	if len(l.codes) > 0 {
		_, ok := l.codes[code]
		return ok
	}
	return VirtualButton(code).IsBack()
}

// Presses returns how many back presses were accepted.
func (l *Listener) Presses() int64 {
	return l.presses.Load()
}

// VirtualButton maps an evdev key code to the button it usually labels on
// handhelds and keyboards.
func VirtualButton(code evdev.EvCode) constants.VirtualButton {
	switch code {
	case evdev.KEY_ESC, evdev.KEY_BACK:
		return constants.VirtualButtonBack
	case evdev.BTN_EAST:
		return constants.VirtualButtonB
	case evdev.BTN_SOUTH:
		return constants.VirtualButtonA
	case evdev.BTN_START:
		return constants.VirtualButtonStart
	case evdev.BTN_SELECT:
		return constants.VirtualButtonSelect
	case evdev.BTN_MODE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
