package ui

import (
	"fmt"
	"strings"

	"go-memtiles/internal/board"
	"go-memtiles/internal/faces"
	"go-memtiles/internal/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#464646"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	winBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 2)
)

// tileStyles holds one style per tile condition; the face colour is applied
// on top when rendering.
type tileStyles struct {
	hidden   lipgloss.Style
	revealed lipgloss.Style
	wrong    lipgloss.Style
	solved   lipgloss.Style
	free     lipgloss.Style
}

func newTileStyles(width int) tileStyles {
	base := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return tileStyles{
		hidden:   base.Background(lipgloss.Color("#BDBDBD")).Foreground(lipgloss.Color("#646464")),
		revealed: base.Background(lipgloss.Color("#303030")),
		wrong:    base.Background(lipgloss.Color("9")),
		solved:   base.Background(lipgloss.Color("#005F00")),
		free:     base.Faint(true),
	}
}

// renderTile draws a single tile. mismatch marks the two picks of a pair
// that is about to flip back.
func (ts tileStyles) renderTile(t board.Tile, cursor, mismatch bool) string {
	var style lipgloss.Style
	glyph := "·"

	switch {
	case t.Free():
		style = ts.free
		glyph = " "
	case !t.Revealed:
		style = ts.hidden
	default:
		switch {
		case t.Solved:
			style = ts.solved
		case mismatch:
			style = ts.wrong
		default:
			style = ts.revealed
		}
		if a, ok := faces.Lookup(t.Face); ok {
			style = style.Foreground(a.Color)
			glyph = a.Shape.Glyph()
		}
	}

	if cursor {
		style = style.Reverse(true)
	}
	return style.Render(glyph)
}

// RenderBoard draws the grid at the positions described by layout.
func RenderBoard(snap game.Snapshot, cursor board.Pos, layout Layout) string {
	ts := newTileStyles(layout.CellW)
	margin := strings.Repeat(" ", layout.OriginX)
	gap := strings.Repeat(" ", layout.GapX)

	lines := make([]string, 0, len(snap.Tiles)*(layout.CellH+layout.GapY))
	for r, row := range snap.Tiles {
		cells := make([]string, len(row))
		for c, t := range row {
			p := board.Pos{Row: r, Col: c}
			cells[c] = ts.renderTile(t, p == cursor && !snap.Won, snap.MismatchPending && isPick(snap.Picks, p))
		}
		line := margin + strings.Join(cells, gap)
		for i := 0; i < layout.CellH; i++ {
			lines = append(lines, line)
		}
		if r < len(snap.Tiles)-1 {
			for i := 0; i < layout.GapY; i++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func isPick(picks []board.Pos, p board.Pos) bool {
	for _, q := range picks {
		if q == p {
			return true
		}
	}
	return false
}

// renderHeader returns headerHeight lines: title, status and a blank line.
func renderHeader(snap game.Snapshot, sess *game.Session) string {
	statusLine := "MOVES: " + fmt.Sprint(snap.Moves) + " | " +
		"PAIRS: " + fmt.Sprintf("%d/%d", snap.PairsFound, snap.TotalPairs) + " | " +
		"SCORE: " + fmt.Sprint(snap.Score) + " | " +
		"LEVEL: " + snap.Difficulty.String()

	if sess != nil {
		if won := sess.RoundsWon(); won > 0 {
			statusLine += fmt.Sprintf(" | WON: %d", won)
		}
		if best, ok := sess.BestMoves(snap.Difficulty); ok {
			statusLine += fmt.Sprintf(" | BEST: %d", best)
		}
	}

	return titleStyle.Render("Memory Tile Puzzle") + "\n" + scoreStyle.Render(statusLine) + "\n\n"
}

func renderWin(snap game.Snapshot) string {
	msg := greenStyle.Render("Congratulations!") + "\n" +
		fmt.Sprintf("You won in %d moves. Score: %d", snap.Moves, snap.Score) + "\n" +
		fmt.Sprintf("Accuracy: %d%% | Par: %d", snap.Accuracy, snap.Par) + "\n" +
		"Press SPACE to play again"
	return winBoxStyle.Render(msg)
}

func renderDifficultyHint() string {
	return faintStyle.Render("Difficulty: (E)asy (M)edium (H)ard")
}
