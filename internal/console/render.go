package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

const rowSeparator = "---------"

// RenderBoard - prints the current board as three rows of three cells. Empty
// cells show their index (faint when color is enabled), occupied cells show
// the mark colored per player.
func (that *Console) RenderBoard(match *entity.Match) {
	fmt.Fprintln(that.out, "\nCurrent board:")
	fmt.Fprintln(that.out, that.boardString(match))
}

func (that *Console) boardString(match *entity.Match) string {
	rows := make([]string, 0, 3)

	for rowStart := 0; rowStart < 9; rowStart += 3 {
		cells := make([]string, 0, 3)
		for idx := rowStart; idx < rowStart+3; idx++ {
			cells = append(cells, that.cellString(match, idx))
		}
		rows = append(rows, strings.Join(cells, " | "))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

func (that *Console) cellString(match *entity.Match, idx int) string {
	value := match.Board[idx]
	if value == entity.EmptyCell {
		return that.faint.Sprint(strconv.Itoa(idx))
	}

	if value == match.HumanMark {
		return that.humanColor.Sprint(value)
	}

	return that.systemColor.Sprint(value)
}

// Intro - prints the welcome banner with the current scoreboard.
func (that *Console) Intro(stats *entity.Stats) {
	fmt.Fprintln(that.out, strings.Repeat("=", 60))
	fmt.Fprintln(that.out, "Welcome to Smart Tic-Tac-Toe!")
	fmt.Fprintln(that.out, strings.Repeat("-", 60))
	fmt.Fprintln(that.out, "• Enter positions 0-8 to make your move.")
	fmt.Fprintln(that.out, "• Type 'h' at any time for a strategy hint.")
	fmt.Fprintln(that.out, "• Type 'q' to quit instantly without losing progress.")
	fmt.Fprintln(that.out, "• Your performance is saved automatically between sessions.")
	fmt.Fprintln(that.out, strings.Repeat("-", 60))
	fmt.Fprintf(that.out, "Current scoreboard → %s\n", stats.Scoreboard())
	fmt.Fprintln(that.out, strings.Repeat("=", 60))
}

// ConfigIntro - opens the pre-round configuration section.
func (that *Console) ConfigIntro(stats *entity.Stats) {
	fmt.Fprintln(that.out, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(that.out, "🎮 Tic-Tac-Toe Configuration")
	fmt.Fprintf(that.out, "Current scoreboard → %s\n", stats.Scoreboard())
}

// ConfigSummary - confirms the chosen configuration.
func (that *Console) ConfigSummary(match *entity.Match, humanStarts bool) {
	order := "will"
	if !humanStarts {
		order = "will not"
	}

	fmt.Fprintln(that.out, "\n✅ Configuration complete!")
	fmt.Fprintf(that.out, "   • You play as %s\n", match.HumanMark)
	fmt.Fprintf(that.out, "   • System plays as %s\n", match.SystemMark)
	fmt.Fprintf(that.out, "   • You %s go first\n", order)
	fmt.Fprintf(that.out, "   • Difficulty: %s\n", match.Difficulty)
}

// RoundStarted - announces a fresh round.
func (that *Console) RoundStarted() {
	fmt.Fprintln(that.out, "\n✨ New round started! Good luck!")
}

// SystemMove - reports the cell the system picked.
func (that *Console) SystemMove(mark string, cell int) {
	fmt.Fprintf(that.out, "\n🤖 System (%s) chooses position %d.\n", mark, cell)
}

// ShowHint - reports the best moves and how the position classifies.
func (that *Console) ShowHint(hint *service.Hint) {
	var message string
	switch hint.Outlook {
	case service.OutlookWinning:
		message = "These move(s) set you up to win or force a win:"
	case service.OutlookDrawing:
		message = "These move(s) should secure at least a draw:"
	default:
		message = "No winning path—block wisely or hope for a mistake:"
	}

	moves := make([]string, 0, len(hint.Moves))
	for _, move := range hint.Moves {
		moves = append(moves, strconv.Itoa(move))
	}

	fmt.Fprintf(that.out, "🔍 Hint → %s %s\n", message, strings.Join(moves, ", "))
}

// HintUnavailable - shown when the scoring pass failed or no moves remain.
func (that *Console) HintUnavailable() {
	fmt.Fprintln(that.out, "🔍 Hint unavailable right now.")
}

// Outcome - announces the round result.
func (that *Console) Outcome(status string) {
	switch status {
	case entity.StatusHumanWon:
		fmt.Fprintln(that.out, "\n🎉 Congratulations! You won this round.")
	case entity.StatusSystemWon:
		fmt.Fprintln(that.out, "\nThe System prevailed this time. Keep practicing!")
	default:
		fmt.Fprintln(that.out, "\n🤝 It's a balanced draw.")
	}
}

// Scoreboard - prints the scoreboard after a recorded round.
func (that *Console) Scoreboard(stats *entity.Stats) {
	fmt.Fprintf(that.out, "Updated scoreboard → %s\n", stats.Scoreboard())
}

// FinalScoreboard - prints the scoreboard on the way out.
func (that *Console) FinalScoreboard(stats *entity.Stats) {
	fmt.Fprintf(that.out, "\nFinal scoreboard: %s\n", stats.Scoreboard())
}

// Goodbye - the outro line.
func (that *Console) Goodbye() {
	fmt.Fprintln(that.out, "\n👋 Thanks for playing! See you next time.")
}

// Warn - surfaces a non-fatal problem to the player.
func (that *Console) Warn(message string) {
	fmt.Fprintln(that.out, message)
}
