package service

import (
	"sort"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/engine"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	OutlookWinning = "winning"
	OutlookDrawing = "drawing"
	OutlookLosing  = "losing"
)

// Hint carries the moves tied for the best minimax score, sorted ascending,
// and a classification of that score.
type Hint struct {
	Moves   []int
	Outlook string
}

type HintService interface {
	Advise(match *entity.Match) (*Hint, error)
}

type hintService struct{}

func NewHintService() HintService {
	return &hintService{}
}

// Advise - reuses the same scoring pass as the move selector, independent of
// difficulty, and reports every move tied for the best score.
func (that *hintService) Advise(match *entity.Match) (*Hint, error) {
	scores, err := engine.ScoreMoves(match.Board, match.HumanMark, match.SystemMark)
	if err != nil {
		return nil, err
	}

	if len(scores) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	bestScore := 0
	first := true
	for _, score := range scores {
		if first || score > bestScore {
			bestScore = score
			first = false
		}
	}

	moves := make([]int, 0, len(scores))
	for cell, score := range scores {
		if score == bestScore {
			moves = append(moves, cell)
		}
	}
	sort.Ints(moves)

	outlook := OutlookDrawing
	switch {
	case bestScore > 0:
		outlook = OutlookWinning
	case bestScore < 0:
		outlook = OutlookLosing
	}

	return &Hint{Moves: moves, Outlook: outlook}, nil
}
