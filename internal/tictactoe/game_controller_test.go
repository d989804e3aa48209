package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestMakeTurn(t *testing.T) {
	t.Run("Human move passes the turn to the system", func(t *testing.T) {
		// Given: a fresh match with the human to move
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)

		// When: the human plays an empty cell
		err := MakeTurn(match, match.HumanMark, 4)

		// Then: the mark is placed and the system is to move
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, match.Board[4])
		assert.Equal(t, entity.StatusAwaitingSystem, match.Status)
	})

	t.Run("System move passes the turn to the human", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, false, entity.DifficultyEasy)

		err := MakeTurn(match, match.SystemMark, 0)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusAwaitingHuman, match.Status)
	})

	t.Run("Completing a line ends the round for the mover", func(t *testing.T) {
		// Given: a match where the human holds two cells of the top row
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)
		match.Board = [9]string{
			entity.MarkX, entity.MarkX, entity.EmptyCell,
			entity.MarkO, entity.MarkO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: the human completes the row
		err := MakeTurn(match, match.HumanMark, 2)

		// Then: the round ends with a human win
		require.NoError(t, err)
		assert.Equal(t, entity.StatusHumanWon, match.Status)
		assert.True(t, match.IsFinished())
	})

	t.Run("System win is reported as the system outcome", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, false, entity.DifficultyEasy)
		match.Board = [9]string{
			entity.MarkX, entity.MarkX, entity.EmptyCell,
			entity.MarkO, entity.MarkO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		err := MakeTurn(match, match.SystemMark, 5)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusSystemWon, match.Status)
	})

	t.Run("Filling the last cell without a line is a tie", func(t *testing.T) {
		// Given: one empty cell left and no winning line possible
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)
		match.Board = [9]string{
			entity.MarkX, entity.MarkO, entity.MarkX,
			entity.MarkX, entity.MarkO, entity.MarkO,
			entity.MarkO, entity.MarkX, entity.EmptyCell,
		}

		// When: the human fills the last cell
		err := MakeTurn(match, match.HumanMark, 8)

		// Then: the round is a tie
		require.NoError(t, err)
		assert.Equal(t, entity.StatusTie, match.Status)
	})

	t.Run("Rejects a move on an occupied cell", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)
		require.NoError(t, MakeTurn(match, match.HumanMark, 4))
		require.NoError(t, MakeTurn(match, match.SystemMark, 0))

		err := MakeTurn(match, match.HumanMark, 4)

		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Rejects an out-of-range cell", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)

		assert.ErrorIs(t, MakeTurn(match, match.HumanMark, 9), apperror.ErrInvalidCell)
		assert.ErrorIs(t, MakeTurn(match, match.HumanMark, -1), apperror.ErrInvalidCell)
	})

	t.Run("Rejects a move out of turn", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)

		err := MakeTurn(match, match.SystemMark, 0)

		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Rejects a move on a finished match", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)
		match.Status = entity.StatusHumanWon

		err := MakeTurn(match, match.HumanMark, 0)

		assert.ErrorIs(t, err, apperror.ErrMatchFinished)
	})
}
