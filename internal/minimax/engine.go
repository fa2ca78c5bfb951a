package minimax

import (
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine picks computer moves. Only the choice between the optimal and a random move
// and the random cell itself are random; the search stays deterministic.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Engine)

// WithSource - makes the random decisions reproducible.
func WithSource(src rand.Source) Option {
	return func(engine *Engine) {
		engine.rng = rand.New(src) //nolint: gosec // game randomness
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint: gosec // game randomness
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

func (that *Engine) BestMove(board entity.Board, side entity.Mark) (int, bool) {
	return BestMove(board, side)
}

// ComputerMove - returns the optimal move with the probability of the difficulty,
// otherwise a uniformly random empty cell.
func (that *Engine) ComputerMove(board entity.Board, side entity.Mark, difficulty entity.Difficulty) (entity.Decision, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Decision{}, apperror.ErrNoAvailableMoves
	}

	that.mu.Lock()
	optimal := that.rng.Float64() < difficulty.OptimalProbability()
	randomCell := availableCells[that.rng.IntN(len(availableCells))]
	that.mu.Unlock()

	if !optimal {
		return entity.Decision{Cell: randomCell}, nil
	}

	cell, _ := BestMove(board, side)

	return entity.Decision{Cell: cell, Optimal: true}, nil
}
