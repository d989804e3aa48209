package service

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/engine"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// secondBestChance is the medium tier's chance of playing the second-ranked
// move instead of the best one. Rank-based on purpose: the second entry of the
// sorted list may still tie the top score.
const secondBestChance = 0.30

type BotService interface {
	MakeTurn(match *entity.Match) (int, error)
}

type botService struct {
	logger *slog.Logger
	rng    *rand.Rand
}

// NewBotService - returns a selector driven by the given random source, so
// tests can substitute a deterministic one.
func NewBotService(logger *slog.Logger, rng *rand.Rand) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		rng:    rng,
	}
}

// MakeTurn - picks a cell according to the match difficulty, applies it and
// returns the chosen cell. Search failures degrade to a random move.
func (that *botService) MakeTurn(match *entity.Match) (int, error) {
	cell, err := that.chooseMove(match)
	if err != nil {
		return 0, err
	}

	if err = tictactoe.MakeTurn(match, match.SystemMark, cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}

func (that *botService) chooseMove(match *entity.Match) (int, error) {
	switch match.Difficulty {
	case entity.DifficultyEasy:
		return that.randomMove(match.Board)
	case entity.DifficultyMedium:
		return that.mediumMove(match)
	default:
		return that.difficultMove(match)
	}
}

// randomMove - uniform random choice among all empty cells, never searching.
func (that *botService) randomMove(board [9]string) (int, error) {
	moves := tictactoe.AvailableMoves(board)
	if len(moves) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return moves[that.rng.Intn(len(moves))], nil //nolint: gosec // it's ok
}

// mediumMove - strong play with occasional variety: 30% of the time the
// second-ranked move is played when one exists, otherwise a random move tied
// for the top score.
func (that *botService) mediumMove(match *entity.Match) (int, error) {
	ranked, err := that.rankedMoves(match)
	if err != nil {
		return that.fallbackMove(match, err)
	}

	if len(ranked) > 1 && that.rng.Float64() < secondBestChance { //nolint: gosec // it's ok
		return ranked[1].cell, nil
	}

	return that.pickTopTied(ranked), nil
}

// difficultMove - flawless minimax play; randomness only breaks ties among
// equally optimal moves.
func (that *botService) difficultMove(match *entity.Match) (int, error) {
	ranked, err := that.rankedMoves(match)
	if err != nil {
		return that.fallbackMove(match, err)
	}

	return that.pickTopTied(ranked), nil
}

// fallbackMove - degrades to a uniform random move when search fails or no
// scored moves exist, per the single round-survival policy of the selector.
func (that *botService) fallbackMove(match *entity.Match, cause error) (int, error) {
	that.logger.Warn("falling back to random move", "match_id", match.ID, "error", cause)

	return that.randomMove(match.Board)
}

type rankedMove struct {
	cell  int
	score int
}

// rankedMoves - scores all available moves and sorts them by score descending,
// breaking score ties by ascending cell index so the ranking is deterministic.
func (that *botService) rankedMoves(match *entity.Match) ([]rankedMove, error) {
	scores, err := engine.ScoreMoves(match.Board, match.HumanMark, match.SystemMark)
	if err != nil {
		return nil, err
	}

	if len(scores) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	ranked := make([]rankedMove, 0, len(scores))
	for cell, score := range scores {
		ranked = append(ranked, rankedMove{cell: cell, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].cell < ranked[j].cell
	})

	return ranked, nil
}

func (that *botService) pickTopTied(ranked []rankedMove) int {
	topScore := ranked[0].score

	tied := make([]int, 0, len(ranked))
	for _, move := range ranked {
		if move.score == topScore {
			tied = append(tied, move.cell)
		}
	}

	return tied[that.rng.Intn(len(tied))] //nolint: gosec // it's ok
}
