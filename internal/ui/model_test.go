package ui

import (
	"strings"
	"testing"
	"time"

	"go-memtiles/internal/board"
	"go-memtiles/internal/faces"
	"go-memtiles/internal/game"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, d game.Difficulty) *Model {
	t.Helper()
	sess, err := game.NewSession(d, game.WithSeed(5), game.WithClock(func() time.Time { return epoch }))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return NewModel(sess, Options{ShowHelp: true})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func hiddenPair(t *testing.T, m *Model) (board.Pos, board.Pos) {
	t.Helper()
	seen := make(map[faces.Face]board.Pos)
	for r, row := range m.Session.Game.BoardSnapshot() {
		for c, tile := range row {
			if tile.Revealed {
				continue
			}
			p := board.Pos{Row: r, Col: c}
			if q, ok := seen[tile.Face]; ok {
				return q, p
			}
			seen[tile.Face] = p
		}
	}
	t.Fatal("no hidden pair")
	return board.Pos{}, board.Pos{}
}

// clickAt sends a left click on the middle of the tile at p.
func clickAt(m *Model, p board.Pos) {
	l := m.Layout()
	m.Update(tea.MouseMsg{
		X:      l.OriginX + p.Col*(l.CellW+l.GapX) + l.CellW/2,
		Y:      l.OriginY + p.Row*(l.CellH+l.GapY),
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(t, game.Easy)
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
	if m.Cursor() != (board.Pos{}) {
		t.Errorf("Cursor should start at origin, got %v", m.Cursor())
	}
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := newTestModel(t, game.Easy)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%q: expected a command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: expected tea.QuitMsg", msg.String())
		}
	}
}

func TestModel_CursorMovementClamps(t *testing.T) {
	m := newTestModel(t, game.Easy)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Cursor() != (board.Pos{}) {
		t.Errorf("Cursor should not leave the board, got %v", m.Cursor())
	}

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(runeKey('l'))
	}
	if m.Cursor() != (board.Pos{Row: 3, Col: 3}) {
		t.Errorf("Expected cursor at (3,3), got %v", m.Cursor())
	}
}

func TestModel_KeyboardFlip(t *testing.T) {
	m := newTestModel(t, game.Easy)

	m.Update(enterKey)

	if !m.Session.Game.BoardSnapshot()[0][0].Revealed {
		t.Error("Enter should flip the tile under the cursor")
	}
}

func TestModel_MouseMatchAndMiss(t *testing.T) {
	m := newTestModel(t, game.Easy)
	a, b := hiddenPair(t, m)

	// A click in the margin is ignored.
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(m.Session.Game.Snapshot().Picks) != 0 {
		t.Fatal("Click outside the grid should be ignored")
	}

	// A right click is ignored.
	l := m.Layout()
	m.Update(tea.MouseMsg{X: l.OriginX, Y: l.OriginY, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if len(m.Session.Game.Snapshot().Picks) != 0 {
		t.Fatal("Right click should be ignored")
	}

	clickAt(m, a)
	clickAt(m, b)

	g := m.Session.Game
	if g.PairsFound() != 1 || g.Moves() != 1 {
		t.Errorf("Expected pairs=1 moves=1, got pairs=%d moves=%d", g.PairsFound(), g.Moves())
	}
	if m.Cursor() != b {
		t.Errorf("Cursor should follow the click, got %v", m.Cursor())
	}
}

func TestModel_TickResolvesMismatch(t *testing.T) {
	m := newTestModel(t, game.Easy)
	g := m.Session.Game
	a, _ := hiddenPair(t, m)
	tiles := g.BoardSnapshot()
	var b board.Pos
	for r, row := range tiles {
		for c, tile := range row {
			if tile.Face != tiles[a.Row][a.Col].Face {
				b = board.Pos{Row: r, Col: c}
			}
		}
	}

	clickAt(m, a)
	clickAt(m, b)
	if !g.IsMismatchPending() {
		t.Fatal("Expected mismatch pending")
	}

	_, cmd := m.Update(TickMsg(epoch.Add(100 * time.Millisecond)))
	if cmd == nil {
		t.Error("Tick should schedule the next tick")
	}
	if !g.IsMismatchPending() {
		t.Error("Mismatch should hold before the deadline")
	}

	m.Update(TickMsg(epoch.Add(time.Second)))
	if g.IsMismatchPending() {
		t.Error("Mismatch should clear at the deadline")
	}
}

func TestModel_WinThenPlayAgain(t *testing.T) {
	m := newTestModel(t, game.Easy)
	for !m.Session.Game.IsWon() {
		a, b := hiddenPair(t, m)
		clickAt(m, a)
		clickAt(m, b)
	}

	if !strings.Contains(m.View(), "Congratulations!") {
		t.Error("View should show the win message")
	}
	if !strings.Contains(m.View(), "Accuracy: 100% | Par: 16") {
		t.Error("Win message should show accuracy and par")
	}
	if m.Session.RoundsWon() != 1 {
		t.Errorf("Expected 1 round won, got %d", m.Session.RoundsWon())
	}

	m.Update(enterKey)

	if m.Session.Game.IsWon() {
		t.Error("Enter after a win should start a new round")
	}
	if m.Session.Game.Moves() != 0 {
		t.Errorf("New round should have 0 moves, got %d", m.Session.Game.Moves())
	}
	if !strings.Contains(m.View(), "BEST: 8") {
		t.Error("Status line should show the best result")
	}
}

func TestModel_ResetKey(t *testing.T) {
	m := newTestModel(t, game.Easy)
	m.Update(enterKey)
	oldID := m.Session.Game.ID()

	m.Update(runeKey('r'))

	if m.Session.Game.ID() == oldID {
		t.Error("r should deal a new board")
	}
	if len(m.Session.Game.Snapshot().Picks) != 0 {
		t.Error("r should clear picks")
	}
}

func TestModel_DifficultyKeys(t *testing.T) {
	m := newTestModel(t, game.Hard)
	for i := 0; i < 6; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	m.Update(runeKey('e'))
	if m.Session.Game.Size() != 4 || m.Layout().Size != 4 {
		t.Errorf("Expected size 4, got game %d layout %d", m.Session.Game.Size(), m.Layout().Size)
	}
	if m.Cursor().Row != 3 {
		t.Errorf("Cursor should be clamped to the smaller board, got %v", m.Cursor())
	}

	m.Update(runeKey('m'))
	if m.Session.Game.Difficulty() != game.Medium {
		t.Errorf("Expected medium, got %s", m.Session.Game.Difficulty())
	}
	m.Update(runeKey('h'))
	if m.Session.Game.Difficulty() != game.Hard {
		t.Errorf("Expected hard, got %s", m.Session.Game.Difficulty())
	}
}

func TestModel_ViewLinesUpWithLayout(t *testing.T) {
	for _, d := range game.Difficulties() {
		m := newTestModel(t, d)
		lines := strings.Split(m.View(), "\n")
		l := m.Layout()

		for row := 0; row < l.Size; row++ {
			y := l.OriginY + row*(l.CellH+l.GapY)
			if w := lipgloss.Width(lines[y]); w != l.Width() {
				t.Errorf("%s: board row %d at line %d has width %d, expected %d", d, row, y, w, l.Width())
			}
			if row < l.Size-1 && strings.TrimSpace(lines[y+1]) != "" {
				t.Errorf("%s: expected a blank gap line after row %d", d, row)
			}
		}
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, game.Easy)
	short := m.View()

	m.Update(runeKey('?'))
	full := m.View()

	if !strings.Contains(short, "more keys") {
		t.Error("Short help should mention the help key")
	}
	if strings.Contains(short, "↑/k") {
		t.Error("Short help should not list cursor keys")
	}
	if !strings.Contains(full, "↑/k") {
		t.Error("Full help should list cursor keys")
	}
}
