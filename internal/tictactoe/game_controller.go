package tictactoe

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type competitionTracker interface {
	RecordRoundEnd(outcome entity.Outcome, moves []entity.Move) (entity.RoundStatus, error)
	IsComplete() bool
	Reset()
}

type moveAdvisor interface {
	BestMove(board entity.Board, side entity.Mark) (int, bool)
	ComputerMove(board entity.Board, side entity.Mark, difficulty entity.Difficulty) (entity.Decision, error)
}

// Options configure the computer-controlled side. An empty ComputerMark means two human sides.
type Options struct {
	ComputerMark entity.Mark
	Difficulty   entity.Difficulty
}

// GameController drives one round at a time: AwaitingMove(turn) until the rule engine
// reports a win or a draw, then RoundOver(outcome). All public methods are serialised.
type GameController struct {
	mu sync.Mutex

	tracker competitionTracker
	advisor moveAdvisor

	computerMark entity.Mark
	difficulty   entity.Difficulty

	board   entity.Board
	status  string
	turn    entity.Mark
	outcome entity.Outcome
	moves   []entity.Move
}

func NewGameController(tracker competitionTracker, advisor moveAdvisor, opts Options) *GameController {
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = entity.DefaultDifficulty
	}

	controller := &GameController{
		tracker:      tracker,
		advisor:      advisor,
		computerMark: opts.ComputerMark,
		difficulty:   difficulty,
	}
	controller.resetRound()

	return controller
}

// ApplyMove - places the mark of the side to move into cell.
// Rejected moves leave the controller untouched.
func (that *GameController) ApplyMove(cell int) (entity.Outcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.applyMove(cell)
}

// RequestComputerMove - lets the search engine pick the move of the computer side and applies it.
func (that *GameController) RequestComputerMove() (entity.Decision, entity.Outcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.computerMark == entity.EmptyCell {
		return entity.Decision{}, that.outcome, apperror.ErrNoComputerPlayer
	}

	if that.status == entity.StatusFinished {
		return entity.Decision{}, that.outcome, apperror.ErrRoundOver
	}

	if that.turn != that.computerMark {
		return entity.Decision{}, that.outcome, apperror.ErrNotComputerTurn
	}

	decision, err := that.advisor.ComputerMove(that.board, that.turn, that.difficulty)
	if err != nil {
		return entity.Decision{}, that.outcome, fmt.Errorf("failed to pick computer move: %w", err)
	}

	outcome, err := that.applyMove(decision.Cell)
	if err != nil {
		return decision, outcome, fmt.Errorf("failed to apply computer move: %w", err)
	}

	return decision, outcome, nil
}

// RequestHint - returns the optimal cell for the side to move. The board is not modified.
func (that *GameController) RequestHint() (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.status == entity.StatusFinished {
		return -1, apperror.ErrRoundOver
	}

	cell, ok := that.advisor.BestMove(that.board, that.turn)
	if !ok {
		return -1, apperror.ErrNoAvailableMoves
	}

	return cell, nil
}

// ResetForNextRound - clears the board and the move log. Standings are kept.
func (that *GameController) ResetForNextRound() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.tracker.IsComplete() {
		return apperror.ErrCompetitionComplete
	}

	that.resetRound()

	return nil
}

// ResetCompetition - clears the round together with the round history and standings.
func (that *GameController) ResetCompetition() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.tracker.Reset()
	that.resetRound()
}

// Restore - rebuilds the round from a snapshot by replaying its move log.
func (that *GameController) Restore(state entity.RoundState) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.resetRound()

	for _, move := range state.Moves {
		if move.Mark != that.turn {
			that.resetRound()
			return fmt.Errorf("%w: move %d out of turn", apperror.ErrInvalidMove, move.Seq)
		}

		if err := that.place(move.Cell()); err != nil {
			that.resetRound()
			return fmt.Errorf("failed to replay move %d: %w", move.Seq, err)
		}
	}

	if that.board != state.Board {
		that.resetRound()
		return fmt.Errorf("%w: board does not match move log", apperror.ErrInvalidMove)
	}

	return nil
}

func (that *GameController) State() entity.RoundState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.RoundState{
		Board:   that.board,
		Status:  that.status,
		Turn:    that.turn,
		Outcome: that.outcome,
		Moves:   that.copyMoves(),
	}
}

func (that *GameController) CurrentOutcome() entity.Outcome {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.outcome
}

func (that *GameController) MoveLog() []entity.Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.copyMoves()
}

func (that *GameController) applyMove(cell int) (entity.Outcome, error) {
	if err := that.place(cell); err != nil {
		return that.outcome, err
	}

	if that.status != entity.StatusFinished {
		return that.outcome, nil
	}

	if _, err := that.tracker.RecordRoundEnd(that.outcome, that.copyMoves()); err != nil {
		return that.outcome, fmt.Errorf("failed to record round end: %w", err)
	}

	return that.outcome, nil
}

// place - validates and writes a move, then moves the state machine on.
func (that *GameController) place(cell int) error {
	if that.status == entity.StatusFinished {
		return apperror.ErrRoundOver
	}

	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	if len(that.moves) >= entity.BoardSize {
		panic(fmt.Errorf("%w: more than %d moves in a round", apperror.ErrInvariantViolation, entity.BoardSize))
	}

	that.board[cell] = that.turn
	that.moves = append(that.moves, entity.NewMove(len(that.moves)+1, that.turn, cell))
	that.outcome = Evaluate(that.board)

	if that.outcome.IsTerminal() {
		that.status = entity.StatusFinished
		that.turn = entity.EmptyCell

		return nil
	}

	that.turn = that.turn.Opponent()

	return nil
}

func (that *GameController) resetRound() {
	that.board = entity.Board{}
	that.status = entity.StatusOngoing
	that.turn = entity.PlayerX
	that.outcome = entity.InProgress()
	that.moves = nil
}

func (that *GameController) copyMoves() []entity.Move {
	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}
