package scoring

// Scoring tracks the score of a single round. It lives only as long as the
// round does; nothing is written to disk.
type Scoring struct {
	// public
	CurrentScore  int
	MatchCount    int
	MismatchCount int
	// private
	scoreTable map[string]int
	par        int
}

// InitScoring creates the scoring for a round with totalPairs pairs. Par is
// two moves per pair; a win under par earns a bonus per move saved.
func InitScoring(totalPairs int) *Scoring {
	return &Scoring{
		scoreTable: getScoreTable(),
		par:        2 * totalPairs,
	}
}

// ScoreEvent updates the score based on a given game event.
func (s *Scoring) ScoreEvent(event string) {
	switch event {
	case "match":
		s.MatchCount++
	case "mismatch":
		s.MismatchCount++
	}
	s.CurrentScore += s.scoreTable[event]
}

// AddParBonus rewards a win that took fewer moves than par.
func (s *Scoring) AddParBonus(moves int) int {
	saved := s.par - moves
	if saved <= 0 {
		return 0
	}
	bonus := saved * s.scoreTable["parBonus"]
	s.CurrentScore += bonus
	return bonus
}

// Par returns the move count at which the par bonus drops to zero.
func (s *Scoring) Par() int {
	return s.par
}

// DisplayScore clamps the score at zero for display.
func (s *Scoring) DisplayScore() int {
	if s.CurrentScore < 0 {
		return 0
	}
	return s.CurrentScore
}

// Accuracy is the share of completed picks that were matches, in percent.
func (s *Scoring) Accuracy() int {
	total := s.MatchCount + s.MismatchCount
	if total == 0 {
		return 0
	}
	return s.MatchCount * 100 / total
}

// getScoreTable returns the predefined values for different scoring events.
func getScoreTable() map[string]int {
	return map[string]int{
		"match":    100,
		"mismatch": -10,
		"win":      500,
		"parBonus": 10,
	}
}
