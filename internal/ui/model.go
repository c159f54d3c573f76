package ui

import (
	"io"
	"time"

	"go-memtiles/internal/board"
	"go-memtiles/internal/game"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Model is the Bubble Tea model. It owns the session exclusively.
type Model struct {
	Session *game.Session

	keys         KeyMap
	help         help.Model
	showHelp     bool
	cursor       board.Pos
	layout       Layout
	tickInterval time.Duration
	logger       *log.Logger
}

// Options tune the front end.
type Options struct {
	TickInterval time.Duration
	ShowHelp     bool
	Logger       *log.Logger
}

func NewModel(sess *game.Session, opts Options) *Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second / 30
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Model{
		Session:      sess,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		showHelp:     opts.ShowHelp,
		layout:       NewLayout(sess.Game.Size()),
		tickInterval: opts.TickInterval,
		logger:       opts.Logger,
	}
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tickInterval)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Session.Game.Tick(time.Time(msg))
		m.Session.Update()
		return m, tickCmd(m.tickInterval)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	g := m.Session.Game

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Reset):
		m.newRound()
	case key.Matches(msg, m.keys.Easy):
		m.changeDifficulty(game.Easy)
	case key.Matches(msg, m.keys.Medium):
		m.changeDifficulty(game.Medium)
	case key.Matches(msg, m.keys.Hard):
		m.changeDifficulty(game.Hard)
	case key.Matches(msg, m.keys.Select):
		if g.IsWon() {
			m.newRound()
			return
		}
		g.SelectTile(m.cursor.Row, m.cursor.Col)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	}
	m.Session.Update()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	p, ok := m.layout.TileAt(msg.X, msg.Y)
	if !ok {
		return
	}
	m.cursor = p
	m.Session.Game.SelectTile(p.Row, p.Col)
	m.Session.Update()
}

func (m *Model) moveCursor(dr, dc int) {
	n := m.Session.Game.Size()
	m.cursor.Row = clamp(m.cursor.Row+dr, 0, n-1)
	m.cursor.Col = clamp(m.cursor.Col+dc, 0, n-1)
}

func (m *Model) newRound() {
	m.Session.NewRound()
	m.logger.Debug("round started by player", "game", m.Session.Game.ID())
}

func (m *Model) changeDifficulty(d game.Difficulty) {
	m.Session.ChangeDifficulty(d)
	m.layout = NewLayout(m.Session.Game.Size())
	m.moveCursor(0, 0)
}

// Cursor returns the keyboard cursor position.
func (m *Model) Cursor() board.Pos {
	return m.cursor
}

// Layout returns the current screen layout of the board.
func (m *Model) Layout() Layout {
	return m.layout
}

func (m *Model) View() string {
	snap := m.Session.Game.Snapshot()

	display := renderHeader(snap, m.Session) +
		RenderBoard(snap, m.cursor, m.layout) + "\n\n"

	if snap.Won {
		display += renderWin(snap) + "\n"
	} else {
		display += renderDifficultyHint() + "\n"
	}

	if m.showHelp {
		display += "\n" + m.help.View(m.keys)
	}
	return display
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
