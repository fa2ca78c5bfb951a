package tictactoe_test

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/competition"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func newController(t *testing.T, rounds int, opts tictactoe.Options) (*tictactoe.GameController, *competition.Tracker) {
	t.Helper()

	tracker, err := competition.NewTracker(rounds)
	require.NoError(t, err)

	engine := minimax.NewEngine(minimax.WithSource(rand.NewPCG(3, 5)))

	return tictactoe.NewGameController(tracker, engine, opts), tracker
}

func play(t *testing.T, controller *tictactoe.GameController, cells ...int) entity.Outcome {
	t.Helper()

	var outcome entity.Outcome
	for _, cell := range cells {
		var err error
		outcome, err = controller.ApplyMove(cell)
		require.NoError(t, err, "cell %d", cell)
	}

	return outcome
}

func TestGameController_NewRound(t *testing.T) {
	// Given: a new controller
	controller, _ := newController(t, 1, tictactoe.Options{})

	// When: reading its state
	state := controller.State()

	// Then: X awaits the first move on an empty board
	assert.Equal(t, entity.RoundState{
		Board:   entity.Board{},
		Status:  entity.StatusOngoing,
		Turn:    entity.PlayerX,
		Outcome: entity.InProgress(),
		Moves:   []entity.Move{},
	}, state)
}

func TestGameController_ApplyMove(t *testing.T) {
	t.Run("Places the mark and flips the turn", func(t *testing.T) {
		// Given: a new round
		controller, _ := newController(t, 1, tictactoe.Options{})

		// When: X plays the center
		outcome, err := controller.ApplyMove(4)

		// Then: the move is logged and O is to move
		require.NoError(t, err)
		assert.Equal(t, entity.InProgress(), outcome)

		state := controller.State()
		assert.Equal(t, entity.PlayerX, state.Board[4])
		assert.Equal(t, entity.PlayerO, state.Turn)
		assert.Equal(t, []entity.Move{{Seq: 1, Mark: entity.PlayerX, Row: 1, Col: 1}}, controller.MoveLog())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X holds cell 0
		controller, _ := newController(t, 1, tictactoe.Options{})
		play(t, controller, 0)
		before := controller.State()

		// When: O tries the same cell
		_, err := controller.ApplyMove(0)

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, controller.State())
	})

	t.Run("Invalid cells", func(t *testing.T) {
		controller, _ := newController(t, 1, tictactoe.Options{})

		for _, cell := range []int{-1, 9, 20} {
			_, err := controller.ApplyMove(cell)
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
		}

		assert.Empty(t, controller.MoveLog())
	})

	t.Run("Move after the round is over", func(t *testing.T) {
		// Given: X has won the top row
		controller, tracker := newController(t, 2, tictactoe.Options{})
		outcome := play(t, controller, 0, 3, 1, 4, 2)
		require.Equal(t, entity.Win(entity.PlayerX, entity.Line{0, 1, 2}), outcome)

		// When: O tries to keep playing
		_, err := controller.ApplyMove(5)

		// Then: the move is rejected and the round was reported once
		require.ErrorIs(t, err, apperror.ErrRoundOver)
		assert.Equal(t, entity.Standings{WinsX: 1}, tracker.Standings())

		state := controller.State()
		assert.True(t, state.IsFinished())
		assert.Equal(t, entity.EmptyCell, state.Turn)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		controller, tracker := newController(t, 1, tictactoe.Options{})

		outcome := play(t, controller, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		assert.Equal(t, entity.Draw(), outcome)
		assert.Equal(t, entity.Draw(), controller.CurrentOutcome())
		assert.Len(t, controller.MoveLog(), 9)
		assert.Equal(t, entity.Standings{Draws: 1}, tracker.Standings())
	})
}

func TestGameController_EveryLineWins(t *testing.T) {
	controller, tracker := newController(t, 8, tictactoe.Options{})

	for round, line := range entity.WinLines {
		// Given: a fresh round
		if round > 0 {
			require.NoError(t, controller.ResetForNextRound())
		}

		// When: X fills the line while O plays the first free cells off it
		var filler []int
		for cell := range entity.BoardSize {
			if cell != line[0] && cell != line[1] && cell != line[2] {
				filler = append(filler, cell)
			}
		}

		outcome := play(t, controller, line[0], filler[0], line[1], filler[1], line[2])

		// Then: X wins on that line
		assert.Equal(t, entity.Win(entity.PlayerX, line), outcome, "line %v", line)
	}

	assert.True(t, tracker.IsComplete())
	assert.Equal(t, entity.Standings{WinsX: 8}, tracker.Standings())
}

func TestGameController_RequestHint(t *testing.T) {
	t.Run("Repeated hints agree and leave the board alone", func(t *testing.T) {
		// Given: X and O have two marks each, X to move
		controller, _ := newController(t, 1, tictactoe.Options{})
		play(t, controller, 0, 3, 1, 4)
		before := controller.State()

		// When: asking for a hint twice
		first, err := controller.RequestHint()
		require.NoError(t, err)
		second, err := controller.RequestHint()
		require.NoError(t, err)

		// Then: both hints point at the winning cell
		assert.Equal(t, 2, first)
		assert.Equal(t, first, second)
		assert.Equal(t, before, controller.State())
	})

	t.Run("No hint after the round is over", func(t *testing.T) {
		controller, _ := newController(t, 1, tictactoe.Options{})
		play(t, controller, 0, 3, 1, 4, 2)

		_, err := controller.RequestHint()

		assert.ErrorIs(t, err, apperror.ErrRoundOver)
	})
}

func TestGameController_RequestComputerMove(t *testing.T) {
	t.Run("Computer answers as O", func(t *testing.T) {
		// Given: an expert computer playing O
		controller, _ := newController(t, 1, tictactoe.Options{ComputerMark: entity.PlayerO, Difficulty: entity.Expert})
		play(t, controller, 0, 4, 8)

		// When: the computer moves
		decision, outcome, err := controller.RequestComputerMove()

		// Then: it plays an optimal cell and X is to move
		require.NoError(t, err)
		assert.True(t, decision.Optimal)
		assert.Equal(t, entity.InProgress(), outcome)

		state := controller.State()
		assert.Equal(t, entity.PlayerO, state.Board[decision.Cell])
		assert.Equal(t, entity.PlayerX, state.Turn)
	})

	t.Run("Rejected on the human's turn", func(t *testing.T) {
		controller, _ := newController(t, 1, tictactoe.Options{ComputerMark: entity.PlayerO})

		_, _, err := controller.RequestComputerMove()

		require.ErrorIs(t, err, apperror.ErrNotComputerTurn)
		assert.Empty(t, controller.MoveLog())
	})

	t.Run("Rejected without a computer side", func(t *testing.T) {
		controller, _ := newController(t, 1, tictactoe.Options{})

		_, _, err := controller.RequestComputerMove()

		assert.ErrorIs(t, err, apperror.ErrNoComputerPlayer)
	})

	t.Run("Optimal play on both sides draws", func(t *testing.T) {
		// Given: an expert computer as X and hints played for O
		controller, _ := newController(t, 1, tictactoe.Options{ComputerMark: entity.PlayerX, Difficulty: entity.Expert})

		for !controller.CurrentOutcome().IsTerminal() {
			_, _, err := controller.RequestComputerMove()
			require.NoError(t, err)

			if controller.CurrentOutcome().IsTerminal() {
				break
			}

			hint, err := controller.RequestHint()
			require.NoError(t, err)
			play(t, controller, hint)
		}

		// Then: perfect play ends in a draw
		assert.Equal(t, entity.Draw(), controller.CurrentOutcome())
	})

	t.Run("Concurrent requests never apply two moves at once", func(t *testing.T) {
		controller, _ := newController(t, 1, tictactoe.Options{ComputerMark: entity.PlayerO, Difficulty: entity.Easy})
		play(t, controller, 4)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, _ = controller.RequestComputerMove()
			}()
		}
		wg.Wait()

		// Then: exactly one computer move was applied
		state := controller.State()
		assert.Len(t, state.Moves, 2)
		assert.Equal(t, 1, state.Board.Count(entity.PlayerO))
	})
}

func TestGameController_Resets(t *testing.T) {
	t.Run("Next round keeps the standings", func(t *testing.T) {
		// Given: X won round one of three
		controller, tracker := newController(t, 3, tictactoe.Options{})
		play(t, controller, 0, 3, 1, 4, 2)

		// When: the next round starts
		require.NoError(t, controller.ResetForNextRound())

		// Then: the board is empty but the standings are kept
		state := controller.State()
		assert.Equal(t, entity.Board{}, state.Board)
		assert.Empty(t, state.Moves)
		assert.Equal(t, entity.PlayerX, state.Turn)
		assert.Equal(t, entity.Standings{WinsX: 1}, tracker.Standings())
		assert.Equal(t, 2, tracker.CurrentRound())
	})

	t.Run("Complete competition only reopens through a competition reset", func(t *testing.T) {
		// Given: a one-round competition that has finished
		controller, tracker := newController(t, 1, tictactoe.Options{})
		play(t, controller, 0, 3, 1, 4, 2)
		require.True(t, tracker.IsComplete())

		// When: a next round is requested
		err := controller.ResetForNextRound()

		// Then: it is rejected
		require.ErrorIs(t, err, apperror.ErrCompetitionComplete)

		// When: the competition is reset
		controller.ResetCompetition()

		// Then: play and standings start over
		assert.False(t, tracker.IsComplete())
		assert.Equal(t, entity.Standings{}, tracker.Standings())
		assert.Empty(t, tracker.Results())
		assert.Empty(t, controller.MoveLog())
		_, err = controller.ApplyMove(4)
		assert.NoError(t, err)
	})
}

func TestGameController_Restore(t *testing.T) {
	t.Run("Replays a consistent snapshot", func(t *testing.T) {
		// Given: the state of a round in progress
		original, _ := newController(t, 1, tictactoe.Options{})
		play(t, original, 4, 0, 8)
		state := original.State()

		// When: restoring it into a new controller
		restored, _ := newController(t, 1, tictactoe.Options{})
		err := restored.Restore(state)

		// Then: both controllers agree
		require.NoError(t, err)
		assert.Equal(t, state, restored.State())
	})

	t.Run("Rejects a board that does not match its moves", func(t *testing.T) {
		original, _ := newController(t, 1, tictactoe.Options{})
		play(t, original, 4)
		state := original.State()
		state.Board[0] = entity.PlayerO

		restored, _ := newController(t, 1, tictactoe.Options{})
		err := restored.Restore(state)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, entity.Board{}, restored.State().Board)
	})
}
