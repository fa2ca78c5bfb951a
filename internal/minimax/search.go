package minimax

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const winScore = 10

// BestMove - runs a full minimax search for side and returns the optimal cell.
// Quicker wins and slower losses score better; equal scores resolve to the lowest index.
// ok is false only when the board has no empty cell.
func BestMove(board entity.Board, side entity.Mark) (int, bool) {
	bestScore := math.MinInt
	bestCell := -1

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = side
		score := search(&board, 0, false, side)
		board[cell] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, bestCell != -1
}

// search - scores the position after a hypothetical move, side being the maximizer.
func search(board *entity.Board, depth int, maximizing bool, side entity.Mark) int {
	outcome := tictactoe.Evaluate(*board)

	switch {
	case outcome.IsWin() && outcome.Winner == side:
		return winScore - depth
	case outcome.IsWin():
		return depth - winScore
	case outcome.IsDraw():
		return 0
	}

	mark := side
	best := math.MinInt
	if !maximizing {
		mark = side.Opponent()
		best = math.MaxInt
	}

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = mark
		score := search(board, depth+1, !maximizing, side)
		board[cell] = entity.EmptyCell

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
