package competition

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Tracker aggregates finished rounds into standings. Once the last configured round is
// recorded the competition is complete until Reset or Configure.
type Tracker struct {
	totalRounds  int
	currentRound int
	results      []entity.RoundResult
	standings    entity.Standings
	complete     bool
}

func NewTracker(totalRounds int) (*Tracker, error) {
	tracker := &Tracker{}
	if err := tracker.Configure(totalRounds); err != nil {
		return nil, err
	}

	return tracker, nil
}

// ValidateRounds - reports a configuration error for round counts outside [MinRounds, MaxRounds].
func ValidateRounds(totalRounds int) error {
	if totalRounds < entity.MinRounds || totalRounds > entity.MaxRounds {
		return fmt.Errorf("%w: rounds must be between %d and %d, got %d",
			apperror.ErrConfiguration, entity.MinRounds, entity.MaxRounds, totalRounds)
	}

	return nil
}

// Configure - starts a new competition with totalRounds rounds.
func (that *Tracker) Configure(totalRounds int) error {
	if err := ValidateRounds(totalRounds); err != nil {
		return err
	}

	that.totalRounds = totalRounds
	that.Reset()

	return nil
}

// RecordRoundEnd - appends the result of a finished round and updates the standings.
func (that *Tracker) RecordRoundEnd(outcome entity.Outcome, moves []entity.Move) (entity.RoundStatus, error) {
	if that.complete {
		return entity.RoundStatus{}, apperror.ErrCompetitionComplete
	}

	if !outcome.IsTerminal() {
		return entity.RoundStatus{}, fmt.Errorf("%w: %s", apperror.ErrInvalidOutcome, outcome.Status)
	}

	result := entity.RoundResult{
		Round:   that.currentRound,
		Outcome: outcome,
		Moves:   append([]entity.Move(nil), moves...),
	}
	that.results = append(that.results, result)
	that.standings.Record(outcome)

	if that.currentRound >= that.totalRounds {
		that.complete = true

		return entity.RoundStatus{
			Result:        result,
			Complete:      true,
			OverallWinner: that.standings.Leader(),
		}, nil
	}

	that.currentRound++

	return entity.RoundStatus{
		Result:    result,
		NextRound: that.currentRound,
	}, nil
}

// OverallWinner - the side with strictly more wins, or PlayerTie. Only known once complete.
func (that *Tracker) OverallWinner() (entity.Mark, error) {
	if !that.complete {
		return entity.EmptyCell, apperror.ErrCompetitionInProgress
	}

	return that.standings.Leader(), nil
}

func (that *Tracker) Reset() {
	that.currentRound = 1
	that.results = nil
	that.standings = entity.Standings{}
	that.complete = false
}

func (that *Tracker) IsComplete() bool {
	return that.complete
}

func (that *Tracker) CurrentRound() int {
	return that.currentRound
}

func (that *Tracker) TotalRounds() int {
	return that.totalRounds
}

func (that *Tracker) Standings() entity.Standings {
	return that.standings
}

func (that *Tracker) Results() []entity.RoundResult {
	return append([]entity.RoundResult(nil), that.results...)
}

func (that *Tracker) State() entity.CompetitionState {
	state := entity.CompetitionState{
		TotalRounds:  that.totalRounds,
		CurrentRound: that.currentRound,
		Results:      that.Results(),
		Standings:    that.standings,
		Complete:     that.complete,
	}

	if that.complete {
		state.OverallWinner = that.standings.Leader()
	}

	return state
}

// RestoreTracker - rebuilds a tracker from a snapshot. Standings are recomputed from the results.
func RestoreTracker(state entity.CompetitionState) (*Tracker, error) {
	tracker, err := NewTracker(state.TotalRounds)
	if err != nil {
		return nil, err
	}

	for _, result := range state.Results {
		if _, err = tracker.RecordRoundEnd(result.Outcome, result.Moves); err != nil {
			return nil, fmt.Errorf("failed to replay round %d: %w", result.Round, err)
		}
	}

	return tracker, nil
}
