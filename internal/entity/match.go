package entity

import "github.com/google/uuid"

const (
	StatusAwaitingHuman  = "awaiting_human"
	StatusAwaitingSystem = "awaiting_system"
	StatusHumanWon       = "human_won"
	StatusSystemWon      = "system_won"
	StatusTie            = "tie"

	MarkX = "X"
	MarkO = "O"

	EmptyCell = ""
)

// Match holds the state of a single round: the board, both marks, whose turn
// it is and the difficulty the system plays at. A Match lives for exactly one
// round; the board is reset at round start and never shared across rounds.
type Match struct {
	ID         string     `json:"id"`
	Board      [9]string  `json:"board"`
	HumanMark  string     `json:"human_mark"`
	SystemMark string     `json:"system_mark"`
	Status     string     `json:"status"`
	Difficulty Difficulty `json:"difficulty"`

	humanStarts bool
}

func NewMatch(humanMark string, humanStarts bool, difficulty Difficulty) *Match {
	systemMark := MarkO
	if humanMark == MarkO {
		systemMark = MarkX
	}

	match := &Match{
		ID:          uuid.NewString(),
		HumanMark:   humanMark,
		SystemMark:  systemMark,
		Difficulty:  difficulty,
		humanStarts: humanStarts,
	}
	match.ResetBoard()

	return match
}

// ResetBoard - clears every cell and restores the initial turn state.
func (that *Match) ResetBoard() {
	that.Board = [9]string{}

	if that.humanStarts {
		that.Status = StatusAwaitingHuman
	} else {
		that.Status = StatusAwaitingSystem
	}
}

func (that *Match) IsFinished() bool {
	switch that.Status {
	case StatusHumanWon, StatusSystemWon, StatusTie:
		return true
	default:
		return false
	}
}

// TurnMark - returns the mark of the player expected to move next, or
// EmptyCell when the match is finished.
func (that *Match) TurnMark() string {
	switch that.Status {
	case StatusAwaitingHuman:
		return that.HumanMark
	case StatusAwaitingSystem:
		return that.SystemMark
	default:
		return EmptyCell
	}
}
