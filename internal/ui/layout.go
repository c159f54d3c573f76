package ui

import "go-memtiles/internal/board"

// Layout describes where tiles land on screen, in terminal cells.
type Layout struct {
	OriginX, OriginY int
	CellW, CellH     int
	GapX, GapY       int
	Size             int
}

// headerHeight is the title line, the status line and one blank line.
const headerHeight = 3

func NewLayout(size int) Layout {
	return Layout{
		OriginX: 2,
		OriginY: headerHeight,
		CellW:   5,
		CellH:   1,
		GapX:    1,
		GapY:    1,
		Size:    size,
	}
}

// TileAt converts a screen cell to a board position. Clicks on gaps or
// outside the grid report ok=false.
func (l Layout) TileAt(x, y int) (board.Pos, bool) {
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return board.Pos{}, false
	}
	strideX, strideY := l.CellW+l.GapX, l.CellH+l.GapY
	if dx%strideX >= l.CellW || dy%strideY >= l.CellH {
		return board.Pos{}, false
	}
	p := board.Pos{Row: dy / strideY, Col: dx / strideX}
	if p.Row >= l.Size || p.Col >= l.Size {
		return board.Pos{}, false
	}
	return p, true
}

// Width is the total width of the board including the left margin.
func (l Layout) Width() int {
	return l.OriginX + l.Size*l.CellW + (l.Size-1)*l.GapX
}
