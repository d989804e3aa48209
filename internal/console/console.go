package console

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// Console is the line-based terminal surface of the game: configuration
// prompts, move input and board rendering. Invalid input re-prompts with a
// descriptive message and never ends the session; an interrupted input stream
// is reported as apperror.ErrQuitGame.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	humanColor  *color.Color
	systemColor *color.Color
	faint       *color.Color
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,

		humanColor:  color.New(color.FgCyan),
		systemColor: color.New(color.FgMagenta),
		faint:       color.New(color.Faint),
	}
}

// MoveInput is one accepted in-round input: either a validated cell or a
// request for a hint.
type MoveInput struct {
	Cell int
	Hint bool
}

// readLine - reads one line, trimmed and lowercased. A closed or interrupted
// input stream is treated as a quit signal.
func (that *Console) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrQuitGame, err)
		}

		return "", fmt.Errorf("%w: input interrupted", apperror.ErrQuitGame)
	}

	return strings.ToLower(strings.TrimSpace(that.in.Text())), nil
}

// promptChoice - re-prompts until the input matches one of the accepted
// options; an empty line selects the default when one is given.
func (that *Console) promptChoice(prompt string, options map[string]string, defaultOption string) (string, error) {
	accepted := make([]string, 0, len(options))
	for key := range options {
		accepted = append(accepted, key)
	}
	sort.Strings(accepted)

	for {
		fmt.Fprint(that.out, prompt)

		raw, err := that.readLine()
		if err != nil {
			return "", err
		}

		if raw == "" && defaultOption != "" {
			return defaultOption, nil
		}

		if value, ok := options[raw]; ok {
			return value, nil
		}

		fmt.Fprintf(that.out, "Invalid choice!...Accepted options: %s.\n", strings.Join(accepted, ", "))
	}
}

// PromptSymbol - asks which mark the human plays, defaulting to X.
func (that *Console) PromptSymbol() (string, error) {
	options := map[string]string{
		"x": entity.MarkX,
		"o": entity.MarkO,
	}

	return that.promptChoice("Choose your symbol (X/O) [X]: ", options, entity.MarkX)
}

// PromptMoveFirst - asks whether the human moves first.
func (that *Console) PromptMoveFirst(defaultFirst bool) (bool, error) {
	defaultAnswer := "n"
	if defaultFirst {
		defaultAnswer = "y"
	}

	options := map[string]string{
		"y":   "y",
		"yes": "y",
		"n":   "n",
		"no":  "n",
	}

	prompt := fmt.Sprintf("Do you want to move first? (y/n) [%s]: ", defaultAnswer)

	answer, err := that.promptChoice(prompt, options, defaultAnswer)
	if err != nil {
		return false, err
	}

	return answer == "y", nil
}

// PromptDifficulty - shows the tier menu and accepts numeric or named aliases,
// defaulting to medium.
func (that *Console) PromptDifficulty() (entity.Difficulty, error) {
	fmt.Fprintln(that.out, "Difficulty levels:")
	fmt.Fprintln(that.out, "  1) Easy      - Random moves (great for warming up)")
	fmt.Fprintln(that.out, "  2) Medium    - Smart play with a dash of unpredictability")
	fmt.Fprintln(that.out, "  3) Difficult - Perfect Minimax system you cannot beat")

	for {
		fmt.Fprint(that.out, "Select difficulty (1/2/3) [2]: ")

		raw, err := that.readLine()
		if err != nil {
			return "", err
		}

		if raw == "" {
			return entity.DifficultyMedium, nil
		}

		difficulty, err := entity.ParseDifficulty(raw)
		if err != nil {
			fmt.Fprintln(that.out, "Invalid choice!...Pick 1, 2, 3 or a difficulty name.")
			continue
		}

		return difficulty, nil
	}
}

// PromptPlayAgain - asks for another round, defaulting to yes.
func (that *Console) PromptPlayAgain() (bool, error) {
	options := map[string]string{
		"y":   "y",
		"yes": "y",
		"n":   "n",
		"no":  "n",
	}

	answer, err := that.promptChoice("Play again? (y/n) [y]: ", options, "y")
	if err != nil {
		return false, err
	}

	return answer == "y", nil
}

// PromptMove - solicits a move for the current board, handling the hint and
// quit commands and re-prompting on invalid input.
func (that *Console) PromptMove(match *entity.Match) (MoveInput, error) {
	validMoves := tictactoe.AvailableMoves(match.Board)

	prompt := fmt.Sprintf(
		"Your move (%s). Enter a position %v, or type 'h' for a hint, 'q' to quit: ",
		match.HumanMark, validMoves,
	)

	for {
		fmt.Fprint(that.out, prompt)

		raw, err := that.readLine()
		if err != nil {
			return MoveInput{}, err
		}

		switch raw {
		case "q", "quit", "exit":
			return MoveInput{}, fmt.Errorf("%w: quit command", apperror.ErrQuitGame)
		case "h", "hint":
			return MoveInput{Hint: true}, nil
		}

		cell, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(that.out, "Please enter a number or a supported command.")
			continue
		}

		if cell < 0 || cell > 8 {
			fmt.Fprintln(that.out, "Move out of range!...Choose between 0 and 8.")
			continue
		}

		if match.Board[cell] != entity.EmptyCell {
			fmt.Fprintln(that.out, "That square is already taken!...Try another one.")
			continue
		}

		return MoveInput{Cell: cell}, nil
	}
}
