package ui

import (
	"testing"

	"go-memtiles/internal/board"
)

func TestLayout_TileAt(t *testing.T) {
	l := NewLayout(4)

	tests := []struct {
		x, y int
		want board.Pos
		ok   bool
	}{
		{2, 3, board.Pos{Row: 0, Col: 0}, true},
		{6, 3, board.Pos{Row: 0, Col: 0}, true},  // last cell of the first tile
		{7, 3, board.Pos{}, false},               // horizontal gap
		{8, 3, board.Pos{Row: 0, Col: 1}, true},  // second tile
		{2, 4, board.Pos{}, false},               // vertical gap
		{2, 5, board.Pos{Row: 1, Col: 0}, true},  // second row
		{20, 9, board.Pos{Row: 3, Col: 3}, true}, // bottom-right tile
		{24, 9, board.Pos{Row: 3, Col: 3}, true},
		{26, 9, board.Pos{}, false}, // past the right edge
		{2, 11, board.Pos{}, false}, // below the board
		{1, 3, board.Pos{}, false},  // in the margin
		{2, 2, board.Pos{}, false},  // in the header
		{-5, -5, board.Pos{}, false},
	}

	for _, tt := range tests {
		got, ok := l.TileAt(tt.x, tt.y)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("TileAt(%d, %d) = %v, %v; expected %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLayout_Width(t *testing.T) {
	if w := NewLayout(4).Width(); w != 25 {
		t.Errorf("Expected width 25, got %d", w)
	}
	if w := NewLayout(6).Width(); w != 37 {
		t.Errorf("Expected width 37, got %d", w)
	}
}
