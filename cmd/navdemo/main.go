// Command navdemo drives a navstack router from a replay script, a
// terminal UI or an SDL window.
package main

import (
	"os"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
)

func main() {
	logger := navstack.NewLogger(os.Stderr, "info")
	if err := Execute(os.Args[1:]); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
