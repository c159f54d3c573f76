package game

import "strings"

// Difficulty picks the board size.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DefaultDifficulty is used whenever a level is unknown.
const DefaultDifficulty = Medium

var boardSizes = map[Difficulty]int{
	Easy:   4,
	Medium: 5,
	Hard:   6,
}

// Difficulties lists every level from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// BoardSize returns the side length for d. Unknown levels get Medium's size.
func (d Difficulty) BoardSize() int {
	if n, ok := boardSizes[d]; ok {
		return n
	}
	return boardSizes[DefaultDifficulty]
}

func (d Difficulty) Valid() bool {
	_, ok := boardSizes[d]
	return ok
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts a level name or its first letter, case
// insensitively. Anything else yields DefaultDifficulty and ok=false.
func ParseDifficulty(s string) (d Difficulty, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e":
		return Easy, true
	case "medium", "m", "normal":
		return Medium, true
	case "hard", "h":
		return Hard, true
	default:
		return DefaultDifficulty, false
	}
}
