package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Evaluate - checks the board for a completed line or a draw.
// The first completed line in scan order is reported.
func Evaluate(board entity.Board) entity.Outcome {
	var (
		found  bool
		winner entity.Mark
		line   entity.Line
	)

	for _, candidate := range entity.WinLines {
		mark := board[candidate[0]]
		if !board.Completes(candidate, mark) {
			continue
		}

		if !found {
			found, winner, line = true, mark, candidate
			continue
		}

		if mark != winner {
			panic(fmt.Errorf("%w: both %s and %s complete a line", apperror.ErrInvariantViolation, winner, mark))
		}
	}

	if found {
		return entity.Win(winner, line)
	}

	// the round continues until every cell is taken
	if board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}
