package state

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go-memtiles/internal/board"
	"go-memtiles/internal/scoring"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"
)

// FSM state names.
const (
	StateIdle       = "idle"
	StateOnePicked  = "onePicked"
	StateEvaluating = "evaluating"
	StateMismatched = "mismatched"
	StateWon        = "won"
)

// DefaultMismatchDelay is how long a mismatched pair stays face up.
const DefaultMismatchDelay = time.Second

type Options struct {
	Size          int
	FaceCount     int
	MismatchDelay time.Duration
	Clock         func() time.Time // stamps the mismatch deadline; time.Now if nil
	Rand          *rand.Rand
	Logger        *log.Logger
}

// State owns the board and every counter of a round. All mutation goes
// through SelectTile, Tick, Reset and SetSize.
type State struct {
	FSM *fsm.FSM

	grid       *board.Board
	firstPick  *board.Pos
	secondPick *board.Pos
	deadline   time.Time
	moves      int
	pairsFound int
	score      *scoring.Scoring
	opts       Options
}

// NewState builds a state with a freshly generated board.
func NewState(opts Options) (*State, error) {
	if opts.MismatchDelay <= 0 {
		opts.MismatchDelay = DefaultMismatchDelay
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &State{opts: opts}
	grid, err := board.Generate(opts.Size, opts.FaceCount, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("new state: %w", err)
	}
	s.install(grid)

	s.FSM = fsm.NewFSM(
		StateIdle,
		getStateTransitions(),
		getStateCallbacks(s),
	)
	return s, nil
}

// SelectTile flips the tile at p. It is ignored while a mismatch is on
// display, after the round is won, off the board, and on tiles that are
// already face up.
func (s *State) SelectTile(p board.Pos) {
	tile, ok := s.grid.At(p)
	if !ok || tile.Revealed || tile.Solved {
		return
	}

	switch s.FSM.Current() {
	case StateIdle:
		_ = s.FSM.Event(context.Background(), "pick", p)
	case StateOnePicked:
		_ = s.FSM.Event(context.Background(), "pickSecond", p)
	}
}

// Tick hides a mismatched pair once now reaches the deadline. Calling it
// again after that has no effect.
func (s *State) Tick(now time.Time) {
	if s.FSM.Current() != StateMismatched || now.Before(s.deadline) {
		return
	}
	_ = s.FSM.Event(context.Background(), "expire")
}

// Reset deals a new board at the current size and clears the round.
func (s *State) Reset() {
	grid, err := board.Generate(s.opts.Size, s.opts.FaceCount, s.opts.Rand)
	if err != nil {
		// Size and face count were validated by NewState/SetSize.
		s.opts.Logger.Error("could not regenerate board", "size", s.opts.Size, "error", err)
		return
	}
	s.install(grid)
	s.FSM.SetState(StateIdle)
}

// SetSize switches to a board of side n and resets.
func (s *State) SetSize(n int) error {
	if n < board.MinSize {
		return fmt.Errorf("set size %d: %w", n, board.ErrInvalidSize)
	}
	s.opts.Size = n
	s.Reset()
	return nil
}

func (s *State) install(grid *board.Board) {
	s.grid = grid
	s.firstPick = nil
	s.secondPick = nil
	s.deadline = time.Time{}
	s.moves = 0
	s.pairsFound = 0
	s.score = scoring.InitScoring(grid.Pairs())
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "pick", Src: []string{StateIdle}, Dst: StateOnePicked},
		{Name: "pickSecond", Src: []string{StateOnePicked}, Dst: StateEvaluating},

		// Pair evaluation
		{Name: "match", Src: []string{StateEvaluating}, Dst: StateIdle},
		{Name: "win", Src: []string{StateEvaluating}, Dst: StateWon},
		{Name: "mismatch", Src: []string{StateEvaluating}, Dst: StateMismatched},

		{Name: "expire", Src: []string{StateMismatched}, Dst: StateIdle},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_onePicked": func(ctx context.Context, e *fsm.Event) {
			p := e.Args[0].(board.Pos)
			s.firstPick = &p
			s.grid.Reveal(p)
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			p := e.Args[0].(board.Pos)
			s.secondPick = &p
			s.grid.Reveal(p)
			s.moves++

			first, _ := s.grid.At(*s.firstPick)
			second, _ := s.grid.At(*s.secondPick)
			if first.Face != second.Face {
				e.FSM.Event(ctx, "mismatch")
				return
			}

			s.grid.Solve(*s.firstPick)
			s.grid.Solve(*s.secondPick)
			s.pairsFound++
			s.score.ScoreEvent("match")
			s.opts.Logger.Debug("pair matched", "face", first.Face, "pairs", s.pairsFound, "moves", s.moves)
			s.firstPick = nil
			s.secondPick = nil

			if s.pairsFound == s.grid.Pairs() {
				e.FSM.Event(ctx, "win")
				return
			}
			e.FSM.Event(ctx, "match")
		},
		"enter_mismatched": func(ctx context.Context, e *fsm.Event) {
			s.score.ScoreEvent("mismatch")
			s.deadline = s.opts.Clock().Add(s.opts.MismatchDelay)
			s.opts.Logger.Debug("pair mismatched", "first", *s.firstPick, "second", *s.secondPick, "moves", s.moves)
		},
		"leave_mismatched": func(ctx context.Context, e *fsm.Event) {
			s.grid.Hide(*s.firstPick)
			s.grid.Hide(*s.secondPick)
			s.firstPick = nil
			s.secondPick = nil
			s.deadline = time.Time{}
		},
		"enter_won": func(ctx context.Context, e *fsm.Event) {
			s.score.ScoreEvent("win")
			bonus := s.score.AddParBonus(s.moves)
			s.opts.Logger.Info("board cleared", "moves", s.moves, "score", s.score.CurrentScore, "parBonus", bonus)
		},
	}
}

// SetLogger replaces the logger used by transition callbacks.
func (s *State) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	s.opts.Logger = l
}
