package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

func TestConsole_PromptSymbol(t *testing.T) {
	t.Run("Accepts a lowercased symbol", func(t *testing.T) {
		ui, _ := newTestConsole("o\n")

		mark, err := ui.PromptSymbol()

		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, mark)
	})

	t.Run("Empty input selects the default X", func(t *testing.T) {
		ui, _ := newTestConsole("\n")

		mark, err := ui.PromptSymbol()

		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, mark)
	})

	t.Run("Re-prompts on invalid input", func(t *testing.T) {
		// Given: an invalid answer followed by a valid one
		ui, out := newTestConsole("z\nx\n")

		mark, err := ui.PromptSymbol()

		// Then: the valid answer wins and a message was shown
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, mark)
		assert.Contains(t, out.String(), "Invalid choice!")
	})

	t.Run("Closed input stream reports a quit signal", func(t *testing.T) {
		ui, _ := newTestConsole("")

		_, err := ui.PromptSymbol()

		assert.ErrorIs(t, err, apperror.ErrQuitGame)
	})
}

func TestConsole_PromptMoveFirst(t *testing.T) {
	t.Run("Accepts yes and no in long form", func(t *testing.T) {
		ui, _ := newTestConsole("yes\n")
		first, err := ui.PromptMoveFirst(false)
		require.NoError(t, err)
		assert.True(t, first)

		ui, _ = newTestConsole("NO\n")
		first, err = ui.PromptMoveFirst(true)
		require.NoError(t, err)
		assert.False(t, first)
	})

	t.Run("Empty input selects the given default", func(t *testing.T) {
		ui, _ := newTestConsole("\n")

		first, err := ui.PromptMoveFirst(true)

		require.NoError(t, err)
		assert.True(t, first)
	})
}

func TestConsole_PromptDifficulty(t *testing.T) {
	t.Run("Accepts numeric input", func(t *testing.T) {
		ui, _ := newTestConsole("3\n")

		difficulty, err := ui.PromptDifficulty()

		require.NoError(t, err)
		assert.Equal(t, entity.DifficultyDifficult, difficulty)
	})

	t.Run("Accepts named aliases", func(t *testing.T) {
		ui, _ := newTestConsole("impossible\n")

		difficulty, err := ui.PromptDifficulty()

		require.NoError(t, err)
		assert.Equal(t, entity.DifficultyDifficult, difficulty)
	})

	t.Run("Empty input defaults to medium", func(t *testing.T) {
		ui, _ := newTestConsole("\n")

		difficulty, err := ui.PromptDifficulty()

		require.NoError(t, err)
		assert.Equal(t, entity.DifficultyMedium, difficulty)
	})

	t.Run("Re-prompts on an unknown alias", func(t *testing.T) {
		ui, out := newTestConsole("nightmare\n1\n")

		difficulty, err := ui.PromptDifficulty()

		require.NoError(t, err)
		assert.Equal(t, entity.DifficultyEasy, difficulty)
		assert.Contains(t, out.String(), "Invalid choice!")
	})
}

func TestConsole_PromptMove(t *testing.T) {
	t.Run("Accepts a valid empty cell", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)
		ui, _ := newTestConsole("4\n")

		input, err := ui.PromptMove(match)

		require.NoError(t, err)
		assert.Equal(t, MoveInput{Cell: 4}, input)
	})

	t.Run("Quit commands raise the quit signal", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)

		for _, command := range []string{"q\n", "quit\n", "exit\n"} {
			ui, _ := newTestConsole(command)

			_, err := ui.PromptMove(match)

			assert.ErrorIs(t, err, apperror.ErrQuitGame, command)
		}
	})

	t.Run("Hint commands request a hint", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)
		ui, _ := newTestConsole("hint\n")

		input, err := ui.PromptMove(match)

		require.NoError(t, err)
		assert.True(t, input.Hint)
	})

	t.Run("Re-prompts on junk, out-of-range and occupied cells", func(t *testing.T) {
		// Given: a match with cell 0 taken and a string of bad inputs
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)
		match.Board[0] = entity.MarkO
		ui, out := newTestConsole("abc\n9\n0\n5\n")

		input, err := ui.PromptMove(match)

		// Then: only the final valid move is accepted
		require.NoError(t, err)
		assert.Equal(t, 5, input.Cell)
		assert.Contains(t, out.String(), "Please enter a number or a supported command.")
		assert.Contains(t, out.String(), "Move out of range!")
		assert.Contains(t, out.String(), "That square is already taken!")
	})

	t.Run("Interrupted input raises the quit signal", func(t *testing.T) {
		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)
		ui, _ := newTestConsole("")

		_, err := ui.PromptMove(match)

		assert.ErrorIs(t, err, apperror.ErrQuitGame)
	})
}

func TestConsole_RenderBoard(t *testing.T) {
	t.Run("Shows marks and indices in a three-row grid", func(t *testing.T) {
		// Given: color disabled for deterministic output
		restore := color.NoColor
		color.NoColor = true
		t.Cleanup(func() { color.NoColor = restore })

		match := entity.NewMatch(entity.MarkX, true, entity.DifficultyEasy)
		match.Board[0] = entity.MarkX
		match.Board[4] = entity.MarkO

		ui, out := newTestConsole("")

		// When: rendering the board
		ui.RenderBoard(match)

		// Then: occupied cells show marks, empty cells show their index
		rendered := out.String()
		assert.Contains(t, rendered, "X | 1 | 2")
		assert.Contains(t, rendered, "3 | O | 5")
		assert.Contains(t, rendered, "6 | 7 | 8")
		assert.Contains(t, rendered, "---------")
	})
}
