package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const helpText = `Commands:
  1-9           place your mark in that cell
  hint          show the best move for the side to move
  next          start the next round
  new <rounds>  start a new competition
  moves [all]   show the move log of this round, or of every round
  stats         show standings, round results and lifetime stats
  help          show this help
  quit          leave the game`

var errQuit = errors.New("quit")

type gameManager interface {
	CreateSession(ctx context.Context, settings entity.Settings) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	ApplyMove(ctx context.Context, id string, cell int) (*entity.Session, error)
	RequestComputerMove(ctx context.Context, id string) (entity.Decision, *entity.Session, error)
	RequestHint(ctx context.Context, id string) (int, error)
	NextRound(ctx context.Context, id string) (*entity.Session, error)
	NewCompetition(ctx context.Context, id string, totalRounds int) (*entity.Session, error)
}

type Options struct {
	Settings entity.Settings

	// ComputerDelay is a pause before each computer move. It has no effect on the result.
	ComputerDelay time.Duration
}

type handlerFunc func(ctx context.Context, args []string) error

// Terminal plays one session through a line based console.
type Terminal struct {
	logger  *slog.Logger
	manager gameManager
	opts    Options

	in       *bufio.Scanner
	out      *termenv.Output
	render   *renderer
	handlers map[string]handlerFunc

	session *entity.Session
}

// New - out is wrapped in a termenv output; pass termenv.WithProfile to force a colour profile.
func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, opts Options, outputOpts ...termenv.OutputOption) *Terminal {
	output := termenv.NewOutput(out, outputOpts...)

	that := &Terminal{
		logger:  logger.With("component", "terminal"),
		manager: manager,
		opts:    opts,
		in:      bufio.NewScanner(in),
		out:     output,
		render:  &renderer{out: output},
	}

	that.handlers = map[string]handlerFunc{
		"hint":  that.handleHint,
		"next":  that.handleNext,
		"new":   that.handleNew,
		"moves": that.handleMoves,
		"stats": that.handleStats,
		"help":  that.handleHelp,
		"quit":  that.handleQuit,
		"exit":  that.handleQuit,
	}

	return that
}

// Run - creates the session and reads commands until quit, end of input or ctx is done.
func (that *Terminal) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	session, err := that.manager.CreateSession(ctx, that.opts.Settings)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	that.session = session
	log.Info("terminal session started", "sessionID", session.ID)

	that.println(that.render.info("TIC-TAC-TOE CHAMPIONSHIP"))
	that.println(helpText)
	that.show()

	for ctx.Err() == nil {
		if err = that.playComputer(ctx); err != nil {
			return err
		}

		that.print("> ")

		if !that.in.Scan() {
			if err = that.in.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}

			return nil
		}

		if err = that.dispatch(ctx, that.in.Text()); err != nil {
			if errors.Is(err, errQuit) {
				log.Info("terminal session finished", "sessionID", that.session.ID)
				return nil
			}

			if ctx.Err() != nil {
				return nil
			}

			that.report(err)
		}
	}

	return nil
}

func (that *Terminal) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	if number, err := strconv.Atoi(fields[0]); err == nil {
		return that.handleMove(ctx, number)
	}

	handler, ok := that.handlers[fields[0]]
	if !ok {
		that.println(that.render.warn(fmt.Sprintf("Unknown command %q, type help for the list", fields[0])))
		return nil
	}

	return handler(ctx, fields[1:])
}

// playComputer - lets the computer move while it is the computer's turn.
func (that *Terminal) playComputer(ctx context.Context) error {
	for that.isComputerTurn() {
		if sleep(ctx, that.opts.ComputerDelay) != nil {
			return nil
		}

		decision, session, err := that.manager.RequestComputerMove(ctx, that.session.ID)
		if err != nil {
			return fmt.Errorf("failed to play computer move: %w", err)
		}

		that.session = session
		row, col := entity.CellPosition(decision.Cell)
		that.println(fmt.Sprintf("Computer plays row %d, column %d", row+1, col+1))
		that.show()
	}

	return nil
}

func (that *Terminal) isComputerTurn() bool {
	mark := that.session.ComputerMark()

	return mark != entity.EmptyCell && !that.session.Round.IsFinished() && that.session.Round.Turn == mark
}

func (that *Terminal) handleMove(ctx context.Context, number int) error {
	session, err := that.manager.ApplyMove(ctx, that.session.ID, number-1)
	if err != nil {
		return err
	}

	that.session = session
	that.show()

	return nil
}

func (that *Terminal) handleHint(ctx context.Context, _ []string) error {
	cell, err := that.manager.RequestHint(ctx, that.session.ID)
	if err != nil {
		return err
	}

	row, col := entity.CellPosition(cell)
	that.println(that.render.info(fmt.Sprintf("Hint: cell %d (row %d, column %d)", cell+1, row+1, col+1)))

	return nil
}

func (that *Terminal) handleNext(ctx context.Context, _ []string) error {
	session, err := that.manager.NextRound(ctx, that.session.ID)
	if err != nil {
		return err
	}

	that.session = session
	that.show()

	return nil
}

func (that *Terminal) handleNew(ctx context.Context, args []string) error {
	rounds := that.session.Competition.TotalRounds
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: rounds must be a number, got %q", apperror.ErrConfiguration, args[0])
		}

		rounds = parsed
	}

	session, err := that.manager.NewCompetition(ctx, that.session.ID, rounds)
	if err != nil {
		return err
	}

	that.session = session
	that.show()

	return nil
}

func (that *Terminal) handleMoves(_ context.Context, args []string) error {
	if len(args) > 0 && args[0] == "all" {
		that.print(that.render.allMoves(that.session))
		return nil
	}

	if len(that.session.Round.Moves) == 0 {
		that.println("No moves yet")
		return nil
	}

	for _, move := range that.session.Round.Moves {
		that.println(move.String())
	}

	return nil
}

func (that *Terminal) handleStats(ctx context.Context, _ []string) error {
	session, err := that.manager.GetSession(ctx, that.session.ID)
	if err != nil {
		return err
	}

	that.session = session
	that.print(that.render.results(session))
	that.println(that.render.standings(session))
	that.println(that.render.stats(session.Stats))

	return nil
}

func (that *Terminal) handleHelp(_ context.Context, _ []string) error {
	that.println(helpText)
	return nil
}

func (that *Terminal) handleQuit(_ context.Context, _ []string) error {
	that.println("Bye")
	return errQuit
}

func (that *Terminal) show() {
	that.println("")
	that.print(that.render.board(that.session.Round.Board, that.session.Round.Outcome))
	that.println(that.render.status(that.session))

	if !that.session.Round.IsFinished() {
		return
	}

	that.println(that.render.standings(that.session))

	if !that.session.Competition.Complete {
		that.println("Type next for the next round")
		return
	}

	that.println("Type new <rounds> to play again")
}

// report - user errors are shown as they are, anything else is logged.
func (that *Terminal) report(err error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		that.println(that.render.warn("Pick a cell from 1 to 9"))
	case errors.Is(err, apperror.ErrCellOccupied):
		that.println(that.render.warn("That cell is already taken"))
	case errors.Is(err, apperror.ErrRoundOver) && that.session.Competition.Complete:
		that.println(that.render.warn("The competition is over, type new <rounds>"))
	case errors.Is(err, apperror.ErrRoundOver):
		that.println(that.render.warn("The round is over, type next"))
	case errors.Is(err, apperror.ErrNotComputerTurn):
		that.println(that.render.warn("Wait for the computer to move"))
	case errors.Is(err, apperror.ErrCompetitionComplete):
		that.println(that.render.warn("The competition is over, type new <rounds>"))
	case errors.Is(err, apperror.ErrConfiguration):
		that.println(that.render.warn(err.Error()))
	default:
		that.logger.Error("command failed", "sessionID", that.session.ID, "error", err)
		that.println(that.render.warn("Something went wrong, see the log"))
	}
}

func (that *Terminal) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func (that *Terminal) println(text string) {
	that.print(text + "\n")
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
