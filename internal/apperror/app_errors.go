package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidCell      = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)
	ErrCellOccupied     = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrRoundOver        = fmt.Errorf("%w: round is already over", ErrInvalidMove)
	ErrNotComputerTurn  = errors.New("it's not the computer's turn")
	ErrNoComputerPlayer = errors.New("no computer player in this game")
	ErrNoAvailableMoves = errors.New("no available moves")

	ErrConfiguration = errors.New("invalid configuration")

	ErrCompetitionComplete   = errors.New("competition is already complete")
	ErrCompetitionInProgress = errors.New("competition is still in progress")
	ErrInvalidOutcome        = errors.New("outcome is not terminal")

	ErrSessionNotFound = errors.New("session not found")

	// ErrInvariantViolation is never returned. It is the panic value for states the engine cannot produce itself.
	ErrInvariantViolation = errors.New("invariant violation")
)
