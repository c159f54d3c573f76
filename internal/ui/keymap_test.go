package ui

import (
	"testing"

	"go-memtiles/internal/game"

	"github.com/charmbracelet/bubbles/key"
)

func TestKeyMap_NoKeyBoundTwice(t *testing.T) {
	km := DefaultKeyMap()
	bindings := map[string]key.Binding{
		"up": km.Up, "down": km.Down, "left": km.Left, "right": km.Right,
		"select": km.Select, "reset": km.Reset,
		"easy": km.Easy, "medium": km.Medium, "hard": km.Hard,
		"help": km.Help, "quit": km.Quit,
	}

	owner := make(map[string]string)
	for name, b := range bindings {
		for _, k := range b.Keys() {
			if prev, ok := owner[k]; ok {
				t.Errorf("Key %q bound to both %s and %s", k, prev, name)
			}
			owner[k] = name
		}
	}
}

func TestModel_HSwitchesToHardNotLeft(t *testing.T) {
	m := newTestModel(t, game.Easy)
	m.Update(runeKey('l'))
	m.Update(runeKey('a'))

	if m.Cursor().Col != 0 {
		t.Errorf("Expected 'a' to move left to column 0, got %d", m.Cursor().Col)
	}

	m.Update(runeKey('h'))
	if m.Session.Game.Size() != 6 {
		t.Errorf("Expected 'h' to switch to a 6x6 board, got %d", m.Session.Game.Size())
	}
}
