package game

// Round is the outcome of one board.
type Round struct {
	ID         string
	Difficulty Difficulty
	Moves      int
	Score      int
	Won        bool
}

// Session keeps one Game for the life of the program and remembers how
// each round ended. Nothing is written to disk.
type Session struct {
	Game   *Game
	Rounds []Round

	// Aggregate State
	TotalScore int

	recorded bool // current round already in Rounds
}

func NewSession(d Difficulty, opts ...Option) (*Session, error) {
	g, err := NewGame(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Session{Game: g}, nil
}

// Update records the current round once it has been won. Call it after
// every input or tick.
func (s *Session) Update() {
	if s.recorded || !s.Game.IsWon() {
		return
	}
	sc := s.Game.Score()
	s.Rounds = append(s.Rounds, Round{
		ID:         s.Game.ID(),
		Difficulty: s.Game.Difficulty(),
		Moves:      s.Game.Moves(),
		Score:      sc.DisplayScore(),
		Won:        true,
	})
	s.TotalScore += sc.DisplayScore()
	s.recorded = true
}

// NewRound deals a fresh board at the current difficulty.
func (s *Session) NewRound() {
	s.closeRound()
	s.Game.Reset()
}

// ChangeDifficulty abandons the current round and deals a board for d.
func (s *Session) ChangeDifficulty(d Difficulty) {
	s.closeRound()
	s.Game.SetDifficulty(d)
}

// closeRound records the current round before it is replaced: a win if
// the board was cleared, otherwise an abandoned round with at least one move.
func (s *Session) closeRound() {
	s.Update()
	if !s.recorded && s.Game.Moves() > 0 {
		sc := s.Game.Score()
		s.Rounds = append(s.Rounds, Round{
			ID:         s.Game.ID(),
			Difficulty: s.Game.Difficulty(),
			Moves:      s.Game.Moves(),
			Score:      sc.DisplayScore(),
		})
	}
	s.recorded = false
}

func (s *Session) RoundsWon() int {
	n := 0
	for _, r := range s.Rounds {
		if r.Won {
			n++
		}
	}
	return n
}

// BestMoves returns the fewest moves any won round at d took.
func (s *Session) BestMoves(d Difficulty) (int, bool) {
	best, found := 0, false
	for _, r := range s.Rounds {
		if !r.Won || r.Difficulty != d {
			continue
		}
		if !found || r.Moves < best {
			best, found = r.Moves, true
		}
	}
	return best, found
}
