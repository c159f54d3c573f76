// Package faces generates the placeholder tile faces shown once a tile is
// revealed. Faces are plain integers to the game logic; this package gives
// each one a colour and a pattern for the terminal.
package faces

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Face identifies a visual pattern. Two tiles match iff their faces are equal.
type Face int

// None is the face of the free tile left over on odd-sized boards.
const None Face = -1

// Shape is the pattern drawn on top of a face's base colour.
type Shape int

const (
	Circle Shape = iota
	Square
	Triangle
)

var shapeGlyphs = map[Shape]string{
	Circle:   "●",
	Square:   "■",
	Triangle: "▲",
}

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Glyph returns the single-cell character for the shape.
func (s Shape) Glyph() string {
	if g, ok := shapeGlyphs[s]; ok {
		return g
	}
	return "?"
}

// Appearance is how a face is drawn.
type Appearance struct {
	Color lipgloss.Color
	Shape Shape
}

// Base colours, pastel to match the light tile background.
var baseColors = []lipgloss.Color{
	"#FFB3BA", "#FFDFBA", "#FFFFBA",
	"#BAFFC9", "#BAE1FF", "#E1BAFF",
	"#FFA0A0", "#C8FFC8", "#C8C8FF",
}

var palette = buildPalette()

// Faces are ordered colour-major so the first len(baseColors) faces all
// differ in colour, and shapes only come into play on larger boards.
func buildPalette() []Appearance {
	shapes := []Shape{Circle, Square, Triangle}
	out := make([]Appearance, 0, len(baseColors)*len(shapes))
	for _, shape := range shapes {
		for _, c := range baseColors {
			out = append(out, Appearance{Color: c, Shape: shape})
		}
	}
	return out
}

// Count is the number of distinct faces available to the board generator.
func Count() int {
	return len(palette)
}

// Palette returns a copy of every available appearance, indexed by Face.
func Palette() []Appearance {
	out := make([]Appearance, len(palette))
	copy(out, palette)
	return out
}

// Lookup returns the appearance of f. ok is false for None and for faces
// outside the palette.
func Lookup(f Face) (Appearance, bool) {
	if f < 0 || int(f) >= len(palette) {
		return Appearance{}, false
	}
	return palette[f], true
}

func (f Face) String() string {
	if f == None {
		return "none"
	}
	a, ok := Lookup(f)
	if !ok {
		return fmt.Sprintf("face(%d)", int(f))
	}
	return fmt.Sprintf("%s %s", a.Color, a.Shape)
}
