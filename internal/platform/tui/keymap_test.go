package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsim/internal/config"
	"github.com/vovakirdan/gridsim/internal/sim"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected sim.Vector2
		ok       bool
	}{
		{"w is up", runeKey('w'), sim.NewVector2(0, 1), true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, sim.NewVector2(0, 1), true},
		{"s is down", runeKey('s'), sim.NewVector2(0, -1), true},
		{"j is down", runeKey('j'), sim.NewVector2(0, -1), true},
		{"a is left", runeKey('a'), sim.NewVector2(-1, 0), true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, sim.NewVector2(1, 0), true},
		{"wait", runeKey('.'), sim.Vector2{}, true},
		{"unbound", runeKey('z'), sim.Vector2{}, false},
		{"quit is not movement", runeKey('q'), sim.Vector2{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir, ok := km.Direction(tc.msg)
			if ok != tc.ok || dir != tc.expected {
				t.Errorf("Direction(%q) = %v, %v; expected %v, %v", tc.msg.String(), dir, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	keys := config.Default().Keys
	keys.Right = []string{"x"}
	km := NewKeyMap(keys)

	if dir, ok := km.Direction(runeKey('x')); !ok || dir != sim.NewVector2(1, 0) {
		t.Errorf("Direction(x) = %v, %v; expected (1, 0), true", dir, ok)
	}
	if _, ok := km.Direction(runeKey('d')); ok {
		t.Error("Direction(d) should be unbound after override")
	}
	if got := km.Right.Help().Key; got != "x" {
		t.Errorf("help key = %q, expected x", got)
	}
}
