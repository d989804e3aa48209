package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - places mark on the given cell and advances the match state
// machine: a completed winning line ends the round for the mover, a full
// board ends it in a tie, otherwise the turn passes to the other player.
func MakeTurn(match *entity.Match, mark string, cell int) error {
	if match.IsFinished() {
		return apperror.ErrMatchFinished
	}

	if err := validateMove(match, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	match.Board[cell] = mark
	updateMatchStatus(match, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(match *entity.Match, mark string, cell int) error {
	if cell < 0 || cell >= len(match.Board) {
		return apperror.ErrInvalidCell
	}

	if match.TurnMark() != mark {
		return apperror.ErrNotYourTurn
	}

	if match.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateMatchStatus - checks the match status after a move.
func updateMatchStatus(match *entity.Match, mark string) {
	switch {
	case HasWon(match.Board, mark):
		if mark == match.HumanMark {
			match.Status = entity.StatusHumanWon
		} else {
			match.Status = entity.StatusSystemWon
		}
	case IsFull(match.Board):
		match.Status = entity.StatusTie
	case mark == match.HumanMark:
		match.Status = entity.StatusAwaitingSystem
	default:
		match.Status = entity.StatusAwaitingHuman
	}
}
