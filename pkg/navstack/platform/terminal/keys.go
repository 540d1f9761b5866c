package terminal

import (
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Back key.Binding
	Quit key.Binding
}

// NewKeyMap builds bindings from cfg, falling back to the defaults for
// empty lists.
func NewKeyMap(cfg navstack.TerminalConfig) KeyMap {
	defaults := navstack.DefaultConfig().Terminal

	backKeys := cfg.BackKeys
	if len(backKeys) == 0 {
		backKeys = defaults.BackKeys
	}
	quitKeys := cfg.QuitKeys
	if len(quitKeys) == 0 {
		quitKeys = defaults.QuitKeys
	}

	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys(backKeys...),
			key.WithHelp(strings.Join(backKeys, "/"), "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quitKeys...),
			key.WithHelp(strings.Join(quitKeys, "/"), "quit"),
		),
	}
}
