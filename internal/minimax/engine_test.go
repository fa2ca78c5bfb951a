package minimax

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// X to move, wins at 8; five empty cells keep the search cheap.
var midgame = entity.Board{
	x, o, e,
	e, x, e,
	o, e, e,
}

func newSeededEngine() *Engine {
	return NewEngine(WithSource(rand.NewPCG(1, 2)))
}

func TestEngine_ComputerMove(t *testing.T) {
	t.Run("Easy never uses the optimal search", func(t *testing.T) {
		engine := newSeededEngine()

		for range 500 {
			decision, err := engine.ComputerMove(midgame, x, entity.Easy)
			require.NoError(t, err)

			assert.False(t, decision.Optimal)
			assert.Equal(t, e, midgame[decision.Cell])
		}
	})

	t.Run("Expert always plays the best move", func(t *testing.T) {
		engine := newSeededEngine()

		for range 200 {
			decision, err := engine.ComputerMove(midgame, x, entity.Expert)
			require.NoError(t, err)

			assert.True(t, decision.Optimal)
			assert.Equal(t, 8, decision.Cell)
		}
	})

	t.Run("Medium and Hard follow their probabilities", func(t *testing.T) {
		const trials = 2000

		for _, difficulty := range []entity.Difficulty{entity.Medium, entity.Hard} {
			engine := newSeededEngine()
			optimal := 0

			for range trials {
				decision, err := engine.ComputerMove(midgame, x, difficulty)
				require.NoError(t, err)

				if decision.Optimal {
					optimal++
					assert.Equal(t, 8, decision.Cell)
				}
			}

			assert.InDelta(t, difficulty.OptimalProbability(), float64(optimal)/trials, 0.05, "difficulty %s", difficulty)
		}
	})

	t.Run("Random cells are spread over every empty cell", func(t *testing.T) {
		// Given: a seeded engine and an empty board
		engine := newSeededEngine()
		counts := make(map[int]int)

		// When: asking for many easy moves
		for range 9000 {
			decision, err := engine.ComputerMove(entity.Board{}, x, entity.Easy)
			require.NoError(t, err)
			counts[decision.Cell]++
		}

		// Then: each cell is chosen roughly a ninth of the time
		require.Len(t, counts, entity.BoardSize)
		for cell, count := range counts {
			assert.InDelta(t, 1000, count, 200, "cell %d", cell)
		}
	})

	t.Run("Full board has no move", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		_, err := newSeededEngine().ComputerMove(board, x, entity.Expert)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}
