package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// WinCombos are the 8 winning index triples of the 3x3 board: 3 rows,
// 3 columns and 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// HasWon - reports whether any winning line is fully occupied by mark.
// Under legal play at most one mark can satisfy this; that is a caller
// invariant, not a runtime check.
func HasWon(board [9]string, mark string) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// IsFull - reports whether no empty cells remain.
func IsFull(board [9]string) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// AvailableMoves - returns the indices of all empty cells in ascending order.
func AvailableMoves(board [9]string) []int {
	moves := make([]int, 0, len(board))
	for idx, cell := range board {
		if cell == entity.EmptyCell {
			moves = append(moves, idx)
		}
	}

	return moves
}
