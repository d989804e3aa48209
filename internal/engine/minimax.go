package engine

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// ErrSearchExhausted is returned when a scoring pass exceeds the depth bound.
// Callers are expected to degrade (random move, hint unavailable) rather than fail.
var ErrSearchExhausted = errors.New("search depth exhausted")

// maxSearchDepth bounds the recursion. A 3x3 board can never exceed 9 plies,
// so hitting the bound means the board invariants were violated upstream.
const maxSearchDepth = 16

// searchKey identifies one evaluated position: the exact board contents, the
// mark to move next and the ply depth already played along the path.
type searchKey struct {
	board  [9]string
	toMove string
	depth  int
}

// evaluator runs one memoized minimax pass. The cache lives for a single
// ScoreMoves invocation and is discarded afterwards; the reachable state
// space is small enough that nothing needs to survive between rounds.
type evaluator struct {
	humanMark  string
	systemMark string
	cache      map[searchKey]int
}

// ScoreMoves - evaluates every currently available system move. For each empty
// cell the system mark is hypothetically placed there and the position is
// scored by minimax with the human to reply at depth 1. Returns an empty map
// when no moves are available.
func ScoreMoves(board [9]string, humanMark, systemMark string) (map[int]int, error) {
	eval := &evaluator{
		humanMark:  humanMark,
		systemMark: systemMark,
		cache:      make(map[searchKey]int),
	}

	scores := make(map[int]int)
	for _, move := range tictactoe.AvailableMoves(board) {
		board[move] = systemMark

		score, err := eval.minimax(board, humanMark, 1)
		if err != nil {
			return nil, err
		}

		board[move] = entity.EmptyCell
		scores[move] = score
	}

	return scores, nil
}

// minimax - returns the optimal score of the position assuming the system
// mark maximizes and the human mark minimizes. Scores reward faster system
// wins (10-depth) and slower system losses (depth-10).
func (that *evaluator) minimax(board [9]string, toMove string, depth int) (int, error) {
	if depth > maxSearchDepth {
		return 0, ErrSearchExhausted
	}

	switch {
	case tictactoe.HasWon(board, that.systemMark):
		return 10 - depth, nil
	case tictactoe.HasWon(board, that.humanMark):
		return depth - 10, nil
	case tictactoe.IsFull(board):
		return 0, nil
	}

	key := searchKey{board: board, toMove: toMove, depth: depth}
	if score, ok := that.cache[key]; ok {
		return score, nil
	}

	nextMark := that.systemMark
	if toMove == that.systemMark {
		nextMark = that.humanMark
	}

	maximizing := toMove == that.systemMark

	bestScore := 0
	first := true
	for idx, cell := range board {
		if cell != entity.EmptyCell {
			continue
		}

		board[idx] = toMove
		score, err := that.minimax(board, nextMark, depth+1)
		board[idx] = entity.EmptyCell

		if err != nil {
			return 0, err
		}

		if first || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			first = false
		}
	}

	that.cache[key] = bestScore

	return bestScore, nil
}
