package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestEvaluate(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		// Given: X holds the left column
		board := entity.Board{
			x, o, e,
			x, o, e,
			x, e, e,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: X wins on the left column
		assert.Equal(t, entity.Win(x, entity.Line{0, 3, 6}), outcome)
	})

	t.Run("Ongoing round", func(t *testing.T) {
		// Given: a board without a completed line
		board := entity.Board{
			x, o, x,
			e, o, e,
			x, e, e,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the round continues
		assert.Equal(t, entity.InProgress(), outcome)
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a full board without a completed line
		board := entity.Board{
			o, x, o,
			o, x, x,
			x, o, x,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the round is a draw
		assert.Equal(t, entity.Draw(), outcome)
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, x,
		}

		outcome := Evaluate(board)

		assert.True(t, outcome.IsWin())
		assert.Equal(t, x, outcome.Winner)
		assert.Equal(t, entity.Line{0, 4, 8}, *outcome.Line)
	})

	t.Run("Reports the first line of a fork in scan order", func(t *testing.T) {
		// Given: X completes the top row and the left column at once
		board := entity.Board{
			x, x, x,
			x, o, o,
			x, o, o,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the row comes first
		assert.Equal(t, entity.Win(x, entity.Line{0, 1, 2}), outcome)
	})

	t.Run("Every line wins for either mark", func(t *testing.T) {
		for _, mark := range []entity.Mark{x, o} {
			for _, line := range entity.WinLines {
				var board entity.Board
				for _, cell := range line {
					board[cell] = mark
				}

				assert.Equal(t, entity.Win(mark, line), Evaluate(board))
			}
		}
	})

	t.Run("Both marks winning is an invariant violation", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, o,
			e, e, e,
		}

		assert.PanicsWithError(t, "invariant violation: both X and O complete a line", func() {
			Evaluate(board)
		})
	})
}

func TestEvaluate_InvariantError(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, apperror.ErrInvariantViolation)
	}()

	Evaluate(entity.Board{
		o, x, e,
		o, x, e,
		o, x, e,
	})
}
