// Package board builds and holds the square grid of paired tiles.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go-memtiles/internal/faces"
)

// MinSize is the smallest side length that still holds a pair.
const MinSize = 2

var (
	ErrInvalidSize      = errors.New("board size must be at least 2")
	ErrInvalidFaceCount = errors.New("face count must be at least 1")
)

// Tile is one grid cell. Solved implies Revealed.
type Tile struct {
	Face     faces.Face
	Revealed bool
	Solved   bool
}

// Free reports whether t is the unpaired centre tile of an odd board.
func (t Tile) Free() bool {
	return t.Face == faces.None
}

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// Board is a square, row-major grid of tiles. The tiles are only reachable
// by value; the mutators are meant for the state machine that owns the board.
type Board struct {
	size  int
	tiles []Tile
}

// Generate builds a shuffled board of side size using faceCount distinct
// faces. Pair i carries face i%faceCount, so every face in play occurs an
// even number of times. When size*size is odd the centre cell is a free
// tile that starts solved.
func Generate(size, faceCount int, rng *rand.Rand) (*Board, error) {
	if size < MinSize {
		return nil, fmt.Errorf("generate board of size %d: %w", size, ErrInvalidSize)
	}
	if faceCount < 1 {
		return nil, fmt.Errorf("generate board with %d faces: %w", faceCount, ErrInvalidFaceCount)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := size * size
	pairs := cells / 2

	values := make([]faces.Face, 0, pairs*2)
	for i := 0; i < pairs; i++ {
		f := faces.Face(i % faceCount)
		values = append(values, f, f)
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	free := -1
	if cells%2 == 1 {
		free = cells / 2
	}

	b := &Board{size: size, tiles: make([]Tile, 0, cells)}
	next := 0
	for i := 0; i < cells; i++ {
		if i == free {
			b.tiles = append(b.tiles, Tile{Face: faces.None, Revealed: true, Solved: true})
			continue
		}
		b.tiles = append(b.tiles, Tile{Face: values[next]})
		next++
	}
	return b, nil
}

// Size returns the side length.
func (b *Board) Size() int {
	return b.size
}

// Pairs returns how many pairs must be found to clear the board.
func (b *Board) Pairs() int {
	return b.size * b.size / 2
}

func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the tile at p. ok is false when p is off the board.
func (b *Board) At(p Pos) (Tile, bool) {
	if !b.InBounds(p) {
		return Tile{}, false
	}
	return b.tiles[b.index(p)], true
}

// Tiles returns a row-major copy of every tile.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Rows returns a copy of the grid as a slice of rows.
func (b *Board) Rows() [][]Tile {
	rows := make([][]Tile, b.size)
	for r := range rows {
		rows[r] = make([]Tile, b.size)
		copy(rows[r], b.tiles[r*b.size:(r+1)*b.size])
	}
	return rows
}

// FaceCounts tallies how often each face occurs, ignoring the free tile.
func (b *Board) FaceCounts() map[faces.Face]int {
	counts := make(map[faces.Face]int)
	for _, t := range b.tiles {
		if t.Free() {
			continue
		}
		counts[t.Face]++
	}
	return counts
}

// Reveal turns the tile at p face up.
func (b *Board) Reveal(p Pos) {
	if b.InBounds(p) {
		b.tiles[b.index(p)].Revealed = true
	}
}

// Hide turns an unsolved tile at p face down again.
func (b *Board) Hide(p Pos) {
	if !b.InBounds(p) {
		return
	}
	t := &b.tiles[b.index(p)]
	if !t.Solved {
		t.Revealed = false
	}
}

// Solve marks the tile at p as part of a found pair.
func (b *Board) Solve(p Pos) {
	if !b.InBounds(p) {
		return
	}
	t := &b.tiles[b.index(p)]
	t.Revealed = true
	t.Solved = true
}

func (b *Board) index(p Pos) int {
	return p.Row*b.size + p.Col
}
