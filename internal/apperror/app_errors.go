package apperror

import "errors"

var (
	ErrMatchFinished    = errors.New("match is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoAvailableMoves = errors.New("no available moves")

	// ErrQuitGame is the only error allowed to unwind past a round boundary.
	// It is raised on an explicit quit command or when console input is interrupted.
	ErrQuitGame = errors.New("player requested exit")
)
