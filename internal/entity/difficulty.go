package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
	Expert Difficulty = "Expert"

	DefaultDifficulty = Medium
)

// ParseDifficulty accepts any letter case. An empty string yields the default.
func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return DefaultDifficulty, nil
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", apperror.ErrConfiguration, value)
	}
}

// OptimalProbability is the chance that a computer move comes from the optimal search.
func (that Difficulty) OptimalProbability() float64 {
	switch that {
	case Easy:
		return 0
	case Medium:
		return 0.7
	case Hard:
		return 0.9
	default:
		return 1
	}
}

// Decision is a computer move and whether it came from the optimal search.
type Decision struct {
	Cell    int  `json:"cell"`
	Optimal bool `json:"optimal"`
}
