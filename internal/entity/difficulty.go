package entity

import (
	"errors"
	"fmt"
)

// Difficulty governs how the system picks its moves. It is chosen at
// configuration time and stays fixed for the whole round.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

var difficultyAliases = map[string]Difficulty{
	"1":    DifficultyEasy,
	"e":    DifficultyEasy,
	"easy": DifficultyEasy,

	"2":           DifficultyMedium,
	"m":           DifficultyMedium,
	"medium":      DifficultyMedium,
	"challenging": DifficultyMedium,

	"3":          DifficultyDifficult,
	"h":          DifficultyDifficult,
	"hard":       DifficultyDifficult,
	"difficult":  DifficultyDifficult,
	"impossible": DifficultyDifficult,
}

// ParseDifficulty - resolves a numeric or named alias into a Difficulty.
func ParseDifficulty(alias string) (Difficulty, error) {
	difficulty, ok := difficultyAliases[alias]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, alias)
	}

	return difficulty, nil
}
