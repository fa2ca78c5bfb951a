package competition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestNewTracker(t *testing.T) {
	t.Run("Rejects round counts outside the range", func(t *testing.T) {
		for _, rounds := range []int{-1, 0, 11} {
			tracker, err := NewTracker(rounds)

			assert.ErrorIs(t, err, apperror.ErrConfiguration, "rounds %d", rounds)
			assert.Nil(t, tracker)
		}
	})

	t.Run("Accepts the bounds", func(t *testing.T) {
		for _, rounds := range []int{1, 10} {
			tracker, err := NewTracker(rounds)
			require.NoError(t, err)

			assert.Equal(t, rounds, tracker.TotalRounds())
			assert.Equal(t, 1, tracker.CurrentRound())
			assert.False(t, tracker.IsComplete())
		}
	})
}

func TestTracker_RecordRoundEnd(t *testing.T) {
	t.Run("Three rounds ending level is a tie", func(t *testing.T) {
		// Given: a competition of three rounds
		tracker, err := NewTracker(3)
		require.NoError(t, err)

		// When: X wins, O wins, then a draw
		status, err := tracker.RecordRoundEnd(entity.Win(entity.PlayerX, entity.WinLines[0]), nil)
		require.NoError(t, err)
		assert.False(t, status.Complete)
		assert.Equal(t, 2, status.NextRound)

		status, err = tracker.RecordRoundEnd(entity.Win(entity.PlayerO, entity.WinLines[4]), nil)
		require.NoError(t, err)
		assert.False(t, status.Complete)
		assert.Equal(t, 3, status.NextRound)

		status, err = tracker.RecordRoundEnd(entity.Draw(), nil)
		require.NoError(t, err)

		// Then: the competition is complete with a tie
		assert.True(t, status.Complete)
		assert.Equal(t, entity.PlayerTie, status.OverallWinner)
		assert.Equal(t, entity.Standings{WinsX: 1, WinsO: 1, Draws: 1}, tracker.Standings())

		winner, err := tracker.OverallWinner()
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerTie, winner)

		results := tracker.Results()
		require.Len(t, results, 3)
		assert.Equal(t, "X wins", results[0].Summary())
		assert.Equal(t, "O wins", results[1].Summary())
		assert.Equal(t, "Draw", results[2].Summary())
		assert.Equal(t, 3, results[2].Round)
	})

	t.Run("Strictly more wins decides the overall winner", func(t *testing.T) {
		tracker, err := NewTracker(2)
		require.NoError(t, err)

		_, err = tracker.RecordRoundEnd(entity.Win(entity.PlayerO, entity.WinLines[0]), nil)
		require.NoError(t, err)

		_, err = tracker.OverallWinner()
		require.ErrorIs(t, err, apperror.ErrCompetitionInProgress)

		status, err := tracker.RecordRoundEnd(entity.Draw(), nil)
		require.NoError(t, err)

		assert.Equal(t, entity.PlayerO, status.OverallWinner)
	})

	t.Run("Complete competition rejects further rounds", func(t *testing.T) {
		// Given: a finished single-round competition
		tracker, err := NewTracker(1)
		require.NoError(t, err)
		_, err = tracker.RecordRoundEnd(entity.Draw(), nil)
		require.NoError(t, err)

		// When: another round end is recorded
		_, err = tracker.RecordRoundEnd(entity.Win(entity.PlayerX, entity.WinLines[0]), nil)

		// Then: it is rejected and the standings are unchanged
		require.ErrorIs(t, err, apperror.ErrCompetitionComplete)
		assert.Equal(t, entity.Standings{Draws: 1}, tracker.Standings())
	})

	t.Run("Rejects an outcome in progress", func(t *testing.T) {
		tracker, err := NewTracker(3)
		require.NoError(t, err)

		_, err = tracker.RecordRoundEnd(entity.InProgress(), nil)

		require.ErrorIs(t, err, apperror.ErrInvalidOutcome)
		assert.Empty(t, tracker.Results())
	})

	t.Run("Keeps its own copy of the moves", func(t *testing.T) {
		tracker, err := NewTracker(2)
		require.NoError(t, err)

		moves := []entity.Move{entity.NewMove(1, entity.PlayerX, 4)}
		_, err = tracker.RecordRoundEnd(entity.Draw(), moves)
		require.NoError(t, err)

		moves[0] = entity.NewMove(1, entity.PlayerO, 0)

		assert.Equal(t, 4, tracker.Results()[0].Moves[0].Cell())
	})
}

func TestTracker_Reset(t *testing.T) {
	// Given: a complete competition
	tracker, err := NewTracker(1)
	require.NoError(t, err)
	_, err = tracker.RecordRoundEnd(entity.Win(entity.PlayerX, entity.WinLines[0]), nil)
	require.NoError(t, err)

	// When: it is reconfigured
	require.NoError(t, tracker.Configure(5))

	// Then: play is open again from round one
	assert.False(t, tracker.IsComplete())
	assert.Equal(t, 1, tracker.CurrentRound())
	assert.Equal(t, 5, tracker.TotalRounds())
	assert.Empty(t, tracker.Results())
	assert.Equal(t, entity.Standings{}, tracker.Standings())

	// Then: an invalid configuration leaves it untouched
	require.ErrorIs(t, tracker.Configure(11), apperror.ErrConfiguration)
	assert.Equal(t, 5, tracker.TotalRounds())
}

func TestRestoreTracker(t *testing.T) {
	// Given: the state of a tracker after two rounds
	original, err := NewTracker(3)
	require.NoError(t, err)
	_, err = original.RecordRoundEnd(entity.Win(entity.PlayerX, entity.WinLines[0]), nil)
	require.NoError(t, err)
	_, err = original.RecordRoundEnd(entity.Draw(), nil)
	require.NoError(t, err)

	// When: restoring from the snapshot
	restored, err := RestoreTracker(original.State())

	// Then: both trackers agree
	require.NoError(t, err)
	assert.Equal(t, original.State(), restored.State())
	assert.Equal(t, 3, restored.CurrentRound())
}
