package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"go-memtiles/internal/board"
	"go-memtiles/internal/faces"
	"go-memtiles/internal/scoring"
	"go-memtiles/internal/state"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Game is the boundary the presentation layer talks to. It is not safe
// for concurrent use; the UI loop owns it.
type Game struct {
	state      *state.State
	difficulty Difficulty
	id         string
	logger     *log.Logger
}

type settings struct {
	seed   int64
	delay  time.Duration
	clock  func() time.Time
	logger *log.Logger
}

// Option configures a Game.
type Option func(*settings)

// WithSeed makes board shuffles reproducible. Zero means seed from the clock.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.seed = seed }
}

// WithMismatchDelay sets how long a mismatched pair stays visible.
func WithMismatchDelay(d time.Duration) Option {
	return func(s *settings) { s.delay = d }
}

// WithClock replaces time.Now when stamping mismatch deadlines.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) { s.clock = clock }
}

func WithLogger(l *log.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// NewGame deals a board for the given difficulty. Unknown levels fall back
// to DefaultDifficulty.
func NewGame(d Difficulty, opts ...Option) (*Game, error) {
	cfg := settings{delay: state.DefaultMismatchDelay}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if !d.Valid() {
		cfg.logger.Warn("unknown difficulty, using default", "requested", int(d), "default", DefaultDifficulty)
		d = DefaultDifficulty
	}

	st, err := state.NewState(state.Options{
		Size:          d.BoardSize(),
		FaceCount:     faces.Count(),
		MismatchDelay: cfg.delay,
		Clock:         cfg.clock,
		Rand:          rand.New(rand.NewSource(cfg.seed)),
		Logger:        cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		state:      st,
		difficulty: d,
		logger:     cfg.logger,
	}
	g.newRound()
	return g, nil
}

// SelectTile flips the tile at (row, col). Invalid or locked selections
// are ignored.
func (g *Game) SelectTile(row, col int) {
	g.state.SelectTile(board.Pos{Row: row, Col: col})
}

// Tick advances time to now, hiding a mismatched pair once its delay is over.
func (g *Game) Tick(now time.Time) {
	g.state.Tick(now)
}

// Reset deals a new board at the current difficulty.
func (g *Game) Reset() {
	g.state.Reset()
	g.newRound()
}

// SetDifficulty switches level and deals a new board. Unknown levels fall
// back to DefaultDifficulty.
func (g *Game) SetDifficulty(d Difficulty) {
	if !d.Valid() {
		g.logger.Warn("unknown difficulty, using default", "requested", int(d), "default", DefaultDifficulty)
		d = DefaultDifficulty
	}
	g.difficulty = d
	if err := g.state.SetSize(d.BoardSize()); err != nil {
		g.logger.Error("could not resize board", "difficulty", d, "error", err)
		return
	}
	g.newRound()
}

func (g *Game) newRound() {
	g.id = uuid.NewString()
	g.state.SetLogger(g.logger.With("game", g.id))
	g.logger.Info("new board", "game", g.id, "difficulty", g.difficulty, "size", g.state.Size(), "pairs", g.state.TotalPairs())
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

func (g *Game) Size() int {
	return g.state.Size()
}

func (g *Game) Moves() int {
	return g.state.Moves()
}

func (g *Game) PairsFound() int {
	return g.state.PairsFound()
}

func (g *Game) TotalPairs() int {
	return g.state.TotalPairs()
}

func (g *Game) IsWon() bool {
	return g.state.IsWon()
}

func (g *Game) IsMismatchPending() bool {
	return g.state.IsMismatchPending()
}

func (g *Game) Score() scoring.Scoring {
	return g.state.Score()
}

// BoardSnapshot returns a copy of the grid, row by row.
func (g *Game) BoardSnapshot() [][]board.Tile {
	return g.state.Rows()
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	ID              string
	Difficulty      Difficulty
	Size            int
	Tiles           [][]board.Tile
	Picks           []board.Pos
	Moves           int
	PairsFound      int
	TotalPairs      int
	Score           int
	Accuracy        int // percent of completed moves that matched
	Par             int
	Won             bool
	MismatchPending bool
}

func (g *Game) Snapshot() Snapshot {
	sc := g.state.Score()
	return Snapshot{
		ID:              g.id,
		Difficulty:      g.difficulty,
		Size:            g.state.Size(),
		Tiles:           g.state.Rows(),
		Picks:           g.state.Picks(),
		Moves:           g.state.Moves(),
		PairsFound:      g.state.PairsFound(),
		TotalPairs:      g.state.TotalPairs(),
		Score:           sc.DisplayScore(),
		Accuracy:        sc.Accuracy(),
		Par:             sc.Par(),
		Won:             g.state.IsWon(),
		MismatchPending: g.state.IsMismatchPending(),
	}
}
