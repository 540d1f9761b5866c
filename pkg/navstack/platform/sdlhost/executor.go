package sdlhost

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Executor runs navigation work on the SDL main thread. It only works
// inside sdl.Main.
type Executor struct {
	serial *internal.Serial
}

// NewExecutor starts an executor that hands every task to sdl.Do.
func NewExecutor() *Executor {
	return &Executor{serial: internal.NewSerial(sdl.Do)}
}

func (e *Executor) Dispatch(task func()) {
	e.serial.Dispatch(task)
}

// Close stops the executor after running queued tasks. Call it while the
// main thread is still processing sdl.Do calls.
func (e *Executor) Close() {
	e.serial.Close()
}
