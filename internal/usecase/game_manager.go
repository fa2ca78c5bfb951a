package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/competition"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	defaultPlayerXName  = "Player 1"
	defaultPlayerOName  = "Player 2"
	defaultComputerName = "Computer"
)

type sessionRepo interface {
	Save(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type archiveRepo interface {
	Save(ctx context.Context, record *entity.CompetitionRecord) error
	List(ctx context.Context, limit int) ([]entity.CompetitionRecord, error)
}

// activeSession is a session loaded into memory with its controller and tracker.
// An ended session stays ended for callers that loaded it before EndSession.
type activeSession struct {
	mu    sync.Mutex
	ended bool

	session    entity.Session
	tracker    *competition.Tracker
	controller *tictactoe.GameController
}

type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	archiveRepo archiveRepo
	engine      *minimax.Engine
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*activeSession
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, archiveRepo archiveRepo, engine *minimax.Engine) *GameManager {
	return &GameManager{
		logger: logger,

		sessionRepo: sessionRepo,
		archiveRepo: archiveRepo,
		engine:      engine,
		now:         time.Now,

		sessions: make(map[string]*activeSession),
	}
}

// CreateSession - validates settings and starts round 1 of a new competition.
func (that *GameManager) CreateSession(ctx context.Context, settings entity.Settings) (*entity.Session, error) {
	log := that.logger.With("method", "CreateSession")

	players, difficulty, err := buildPlayers(settings)
	if err != nil {
		return nil, err
	}

	tracker, err := competition.NewTracker(settings.Rounds)
	if err != nil {
		return nil, err
	}

	now := that.now().UTC()
	active := &activeSession{
		session: entity.Session{
			ID:         uuid.NewString(),
			Players:    players,
			Difficulty: difficulty,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		tracker: tracker,
	}
	active.controller = that.newController(tracker, &active.session)

	active.mu.Lock()
	defer active.mu.Unlock()

	snapshot, err := that.persist(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.mu.Lock()
	that.sessions[snapshot.ID] = active
	that.mu.Unlock()

	log.Info("session created", "sessionID", snapshot.ID, "rounds", settings.Rounds, "computer", active.session.ComputerMark())

	return snapshot, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	active, err := that.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer active.mu.Unlock()

	return that.snapshot(active), nil
}

// ApplyMove - plays cell for the side to move.
func (that *GameManager) ApplyMove(ctx context.Context, id string, cell int) (*entity.Session, error) {
	active, err := that.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer active.mu.Unlock()

	before := that.snapshot(active)

	outcome, err := active.controller.ApplyMove(cell)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	return that.afterMove(ctx, active, before, outcome)
}

// RequestComputerMove - lets the computer side play and reports how the move was picked.
func (that *GameManager) RequestComputerMove(ctx context.Context, id string) (entity.Decision, *entity.Session, error) {
	active, err := that.acquire(ctx, id)
	if err != nil {
		return entity.Decision{}, nil, err
	}
	defer active.mu.Unlock()

	before := that.snapshot(active)

	decision, outcome, err := active.controller.RequestComputerMove()
	if err != nil {
		return entity.Decision{}, nil, fmt.Errorf("failed to request computer move: %w", err)
	}

	that.logger.Debug("computer moved",
		"method", "RequestComputerMove", "sessionID", id, "cell", decision.Cell, "optimal", decision.Optimal)

	snapshot, err := that.afterMove(ctx, active, before, outcome)
	if err != nil {
		return entity.Decision{}, nil, err
	}

	return decision, snapshot, nil
}

func (that *GameManager) RequestHint(ctx context.Context, id string) (int, error) {
	active, err := that.acquire(ctx, id)
	if err != nil {
		return -1, err
	}
	defer active.mu.Unlock()

	cell, err := active.controller.RequestHint()
	if err != nil {
		return -1, fmt.Errorf("failed to request hint: %w", err)
	}

	return cell, nil
}

// NextRound - clears the board for the next round of the running competition.
func (that *GameManager) NextRound(ctx context.Context, id string) (*entity.Session, error) {
	active, err := that.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer active.mu.Unlock()

	before := that.snapshot(active)

	if err = active.controller.ResetForNextRound(); err != nil {
		return nil, fmt.Errorf("failed to start next round: %w", err)
	}

	return that.commit(ctx, active, before)
}

// NewCompetition - starts over with totalRounds rounds. Lifetime stats are kept.
func (that *GameManager) NewCompetition(ctx context.Context, id string, totalRounds int) (*entity.Session, error) {
	if err := competition.ValidateRounds(totalRounds); err != nil {
		return nil, err
	}

	active, err := that.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer active.mu.Unlock()

	before := that.snapshot(active)

	if err = active.tracker.Configure(totalRounds); err != nil {
		return nil, err
	}

	active.controller.ResetCompetition()

	snapshot, err := that.commit(ctx, active, before)
	if err != nil {
		return nil, err
	}

	that.logger.Info("competition restarted", "method", "NewCompetition", "sessionID", id, "rounds", totalRounds)

	return snapshot, nil
}

// EndSession - deletes the stored session while holding it, so no in-flight call can write it back.
func (that *GameManager) EndSession(ctx context.Context, id string) error {
	log := that.logger.With("method", "EndSession", "sessionID", id)

	active, err := that.acquire(ctx, id)
	if err != nil {
		return err
	}
	defer active.mu.Unlock()

	if err = that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	active.ended = true
	that.evict(id, active)

	log.Info("session ended")

	return nil
}

// ListCompetitions - archived competitions, newest first. limit is clamped to [1, MaxListLimit].
func (that *GameManager) ListCompetitions(ctx context.Context, limit int) ([]entity.CompetitionRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	records, err := that.archiveRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}

	return records, nil
}

func (that *GameManager) afterMove(
	ctx context.Context, active *activeSession, before *entity.Session, outcome entity.Outcome,
) (*entity.Session, error) {
	if outcome.IsTerminal() {
		active.session.Stats.Record(outcome, statsSide(&active.session))
	}

	snapshot, err := that.commit(ctx, active, before)
	if err != nil {
		return nil, err
	}

	if outcome.IsTerminal() && active.tracker.IsComplete() {
		that.archive(ctx, active)
	}

	return snapshot, nil
}

// commit - stores the session. When the store rejects it, the session goes back to before.
func (that *GameManager) commit(ctx context.Context, active *activeSession, before *entity.Session) (*entity.Session, error) {
	snapshot, err := that.persist(ctx, active)
	if err == nil {
		return snapshot, nil
	}

	that.rollback(active, before)

	return nil, err
}

func (that *GameManager) rollback(active *activeSession, before *entity.Session) {
	restored, err := that.restore(before)
	if err != nil {
		that.logger.Error("failed to roll back session, dropping it from memory",
			"method", "rollback", "sessionID", before.ID, "error", err)
		that.evict(before.ID, active)

		return
	}

	active.session = restored.session
	active.tracker = restored.tracker
	active.controller = restored.controller
}

// archive - a failed archive write is logged; the session itself stays playable.
func (that *GameManager) archive(ctx context.Context, active *activeSession) {
	log := that.logger.With("method", "archive", "sessionID", active.session.ID)

	winner, err := active.tracker.OverallWinner()
	if err != nil {
		log.Error("failed to get overall winner", "error", err)
		return
	}

	record := &entity.CompetitionRecord{
		SessionID:     active.session.ID,
		PlayerXName:   active.session.PlayerName(entity.PlayerX),
		PlayerOName:   active.session.PlayerName(entity.PlayerO),
		TotalRounds:   active.tracker.TotalRounds(),
		Standings:     active.tracker.Standings(),
		OverallWinner: winner,
		FinishedAt:    that.now().UTC(),
	}

	if err = that.archiveRepo.Save(ctx, record); err != nil {
		log.Error("failed to archive competition", "error", err)
		return
	}

	log.Info("competition archived", "recordID", record.ID, "winner", winner)
}

func (that *GameManager) persist(ctx context.Context, active *activeSession) (*entity.Session, error) {
	active.session.UpdatedAt = that.now().UTC()

	snapshot := that.snapshot(active)
	if err := that.sessionRepo.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return snapshot, nil
}

func (that *GameManager) snapshot(active *activeSession) *entity.Session {
	session := active.session
	session.Players = append([]entity.Player(nil), active.session.Players...)
	session.Round = active.controller.State()
	session.Competition = active.tracker.State()

	return &session
}

// acquire - loads the session and locks it. The caller unlocks.
func (that *GameManager) acquire(ctx context.Context, id string) (*activeSession, error) {
	active, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	active.mu.Lock()
	if active.ended {
		active.mu.Unlock()
		return nil, apperror.ErrSessionNotFound
	}

	return active, nil
}

// evict - forgets active unless id already points at a newer copy.
func (that *GameManager) evict(id string, active *activeSession) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.sessions[id] == active {
		delete(that.sessions, id)
	}
}

// load - returns the in-memory session, restoring it from the store on a miss.
func (that *GameManager) load(ctx context.Context, id string) (*activeSession, error) {
	that.mu.Lock()
	active, ok := that.sessions[id]
	that.mu.Unlock()

	if ok {
		return active, nil
	}

	stored, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrSessionNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	restored, err := that.restore(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", id, err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if active, ok = that.sessions[id]; ok {
		return active, nil
	}

	that.sessions[id] = restored
	that.logger.Debug("session restored", "method", "load", "sessionID", id)

	return restored, nil
}

func (that *GameManager) restore(stored *entity.Session) (*activeSession, error) {
	tracker, err := competition.RestoreTracker(stored.Competition)
	if err != nil {
		return nil, err
	}

	active := &activeSession{
		session: *stored,
		tracker: tracker,
	}
	active.session.Round = entity.RoundState{}
	active.session.Competition = entity.CompetitionState{}
	active.controller = that.newController(tracker, &active.session)

	if err = active.controller.Restore(stored.Round); err != nil {
		return nil, err
	}

	return active, nil
}

func (that *GameManager) newController(tracker *competition.Tracker, session *entity.Session) *tictactoe.GameController {
	return tictactoe.NewGameController(tracker, that.engine, tictactoe.Options{
		ComputerMark: session.ComputerMark(),
		Difficulty:   session.Difficulty,
	})
}

func buildPlayers(settings entity.Settings) ([]entity.Player, entity.Difficulty, error) {
	difficulty, err := entity.ParseDifficulty(string(settings.Difficulty))
	if err != nil {
		return nil, "", err
	}

	players := []entity.Player{
		{Name: nameOr(settings.PlayerXName, defaultPlayerXName), Mark: entity.PlayerX},
		{Name: nameOr(settings.PlayerOName, defaultPlayerOName), Mark: entity.PlayerO},
	}

	if !settings.VsComputer {
		return players, "", nil
	}

	computerMark := settings.ComputerMark
	if computerMark == entity.EmptyCell {
		computerMark = entity.PlayerO
	}

	if !computerMark.IsPlayer() {
		return nil, "", fmt.Errorf("%w: computer mark must be X or O, got %q", apperror.ErrConfiguration, computerMark)
	}

	for i := range players {
		if players[i].Mark == computerMark {
			players[i].Computer = true
			players[i].Name = defaultComputerName
		}
	}

	return players, difficulty, nil
}

// statsSide - the side lifetime stats are kept for: the human against a computer, otherwise X.
func statsSide(session *entity.Session) entity.Mark {
	if mark := session.ComputerMark(); mark != entity.EmptyCell {
		return mark.Opponent()
	}

	return entity.PlayerX
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}

	return name
}
