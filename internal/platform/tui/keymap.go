package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsim/internal/config"
	"github.com/vovakirdan/gridsim/internal/sim"
)

// KeyMap defines the key bindings for a running scenario.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Wait    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Wait},
		{k.Restart, k.Help, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(keys config.KeysMap) KeyMap {
	return KeyMap{
		Up:      binding(keys.Up, "up"),
		Down:    binding(keys.Down, "down"),
		Left:    binding(keys.Left, "left"),
		Right:   binding(keys.Right, "right"),
		Wait:    binding(keys.Wait, "wait"),
		Restart: binding(keys.Restart, "restart"),
		Help:    binding([]string{"?"}, "help"),
		Quit:    binding(keys.Quit, "quit"),
	}
}

// DefaultKeyMap returns bindings for the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	label := keys
	if len(label) > 2 {
		label = label[:2]
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(label, "/"), desc),
	)
}

// Direction translates a key message to a host input vector.
// Host space has Y growing upward, so "up" is (0, 1).
// The second result is false for keys that are not movement keys.
func (k KeyMap) Direction(msg tea.KeyMsg) (sim.Vector2, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return sim.NewVector2(0, 1), true
	case key.Matches(msg, k.Down):
		return sim.NewVector2(0, -1), true
	case key.Matches(msg, k.Left):
		return sim.NewVector2(-1, 0), true
	case key.Matches(msg, k.Right):
		return sim.NewVector2(1, 0), true
	case key.Matches(msg, k.Wait):
		return sim.Vector2{}, true
	}
	return sim.Vector2{}, false
}
