package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errBadRequest = errors.New("bad request")

type gameManager interface {
	CreateSession(ctx context.Context, settings entity.Settings) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	ApplyMove(ctx context.Context, id string, cell int) (*entity.Session, error)
	RequestComputerMove(ctx context.Context, id string) (entity.Decision, *entity.Session, error)
	RequestHint(ctx context.Context, id string) (int, error)
	NextRound(ctx context.Context, id string) (*entity.Session, error)
	NewCompetition(ctx context.Context, id string, totalRounds int) (*entity.Session, error)
	EndSession(ctx context.Context, id string) error
	ListCompetitions(ctx context.Context, limit int) ([]entity.CompetitionRecord, error)
}

type handlers struct {
	logger  *slog.Logger
	manager gameManager
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type competitionRequest struct {
	Rounds int `json:"rounds"`
}

type computerMoveResponse struct {
	Decision entity.Decision `json:"decision"`
	Session  *entity.Session `json:"session"`
}

type hintResponse struct {
	Cell int `json:"cell"`
	Row  int `json:"row"`
	Col  int `json:"col"`
}

type moveLogResponse struct {
	Moves []entity.Move `json:"moves"`
	Lines []string      `json:"lines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	var settings entity.Settings
	if err := decode(r, &settings); err != nil {
		that.writeError(w, r, err)
		return
	}

	session, err := that.manager.CreateSession(r.Context(), settings)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, session)
}

func (that *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.manager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) endSession(w http.ResponseWriter, r *http.Request) {
	if err := that.manager.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) applyMove(w http.ResponseWriter, r *http.Request) {
	var request moveRequest
	if err := decode(r, &request); err != nil {
		that.writeError(w, r, err)
		return
	}

	if request.Cell == nil {
		that.writeError(w, r, fmt.Errorf("%w: cell is required", errBadRequest))
		return
	}

	session, err := that.manager.ApplyMove(r.Context(), chi.URLParam(r, "id"), *request.Cell)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) computerMove(w http.ResponseWriter, r *http.Request) {
	decision, session, err := that.manager.RequestComputerMove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, computerMoveResponse{Decision: decision, Session: session})
}

func (that *handlers) hint(w http.ResponseWriter, r *http.Request) {
	cell, err := that.manager.RequestHint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	row, col := entity.CellPosition(cell)
	that.writeJSON(w, http.StatusOK, hintResponse{Cell: cell, Row: row, Col: col})
}

func (that *handlers) moveLog(w http.ResponseWriter, r *http.Request) {
	session, err := that.manager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	lines := make([]string, 0, len(session.Round.Moves))
	for _, move := range session.Round.Moves {
		lines = append(lines, move.String())
	}

	that.writeJSON(w, http.StatusOK, moveLogResponse{Moves: session.Round.Moves, Lines: lines})
}

func (that *handlers) standings(w http.ResponseWriter, r *http.Request) {
	session, err := that.manager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session.Competition)
}

func (that *handlers) nextRound(w http.ResponseWriter, r *http.Request) {
	session, err := that.manager.NextRound(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) newCompetition(w http.ResponseWriter, r *http.Request) {
	var request competitionRequest
	if err := decode(r, &request); err != nil {
		that.writeError(w, r, err)
		return
	}

	session, err := that.manager.NewCompetition(r.Context(), chi.URLParam(r, "id"), request.Rounds)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) listCompetitions(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			that.writeError(w, r, fmt.Errorf("%w: limit must be a number", errBadRequest))
			return
		}

		limit = parsed
	}

	records, err := that.manager.ListCompetitions(r.Context(), limit)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, records)
}

func decode(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

// statusOf - maps domain errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, apperror.ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrNotComputerTurn),
		errors.Is(err, apperror.ErrNoComputerPlayer),
		errors.Is(err, apperror.ErrCompetitionComplete),
		errors.Is(err, apperror.ErrNoAvailableMoves):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
