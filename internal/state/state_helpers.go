package state

import (
	"errors"
	"fmt"
	"time"

	"go-memtiles/internal/board"
	"go-memtiles/internal/scoring"
)

func (s *State) Moves() int {
	return s.moves
}

func (s *State) PairsFound() int {
	return s.pairsFound
}

func (s *State) TotalPairs() int {
	return s.grid.Pairs()
}

func (s *State) Size() int {
	return s.grid.Size()
}

func (s *State) IsWon() bool {
	return s.FSM.Current() == StateWon
}

func (s *State) IsMismatchPending() bool {
	return s.FSM.Current() == StateMismatched
}

// MismatchDeadline returns when the displayed mismatch will be hidden.
func (s *State) MismatchDeadline() (time.Time, bool) {
	if !s.IsMismatchPending() {
		return time.Time{}, false
	}
	return s.deadline, true
}

// Picks returns the positions currently awaiting resolution, first pick first.
func (s *State) Picks() []board.Pos {
	var picks []board.Pos
	if s.firstPick != nil {
		picks = append(picks, *s.firstPick)
	}
	if s.secondPick != nil {
		picks = append(picks, *s.secondPick)
	}
	return picks
}

// Tile returns a copy of the tile at p.
func (s *State) Tile(p board.Pos) (board.Tile, bool) {
	return s.grid.At(p)
}

// Rows returns a copy of the grid.
func (s *State) Rows() [][]board.Tile {
	return s.grid.Rows()
}

// Score returns a copy of the round's scoring.
func (s *State) Score() scoring.Scoring {
	return *s.score
}

// CheckInvariants reports every board invariant the current state violates.
func (s *State) CheckInvariants() error {
	var errs []error
	open := 0
	for i, t := range s.grid.Tiles() {
		if t.Solved && !t.Revealed {
			errs = append(errs, fmt.Errorf("tile %d is solved but hidden", i))
		}
		if t.Revealed && !t.Solved {
			open++
		}
	}
	if open > 2 {
		errs = append(errs, fmt.Errorf("%d tiles are revealed and unsolved", open))
	}
	if s.secondPick != nil && s.firstPick == nil {
		errs = append(errs, errors.New("second pick without a first pick"))
	}
	if s.pairsFound < 0 || s.pairsFound > s.grid.Pairs() {
		errs = append(errs, fmt.Errorf("pairs found %d outside [0, %d]", s.pairsFound, s.grid.Pairs()))
	}
	for f, n := range s.grid.FaceCounts() {
		if n%2 != 0 {
			errs = append(errs, fmt.Errorf("face %d occurs %d times", f, n))
		}
	}
	return errors.Join(errs...)
}
