package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type matchManager interface {
	Play(ctx context.Context, req usecase.MatchRequest) (*usecase.MatchResult, error)
	SuggestMove(ctx context.Context, engineName string, grid entity.Grid, player entity.Player) (entity.Grid, entity.Move, error)
	GetGame(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteGame(ctx context.Context, id string) error
}

type handlers struct {
	logger       *slog.Logger
	matchManager matchManager
}

type moveRequest struct {
	Board  entity.Grid `json:"board"`
	Player string      `json:"player"`
	Engine string      `json:"engine"`
}

type moveResponse struct {
	Board entity.Grid `json:"board"`
	Move  entity.Move `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter - HTTP API over the match manager.
func NewRouter(logger *slog.Logger, matchManager matchManager) http.Handler {
	that := &handlers{
		logger:       logger.With("component", "rest"),
		matchManager: matchManager,
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", that.PingHandler)
	router.Post("/move", that.MoveHandler)
	router.Post("/matches", that.MatchHandler)
	router.Get("/games/{id}", that.GetGameHandler)
	router.Delete("/games/{id}", that.DeleteGameHandler)

	return router
}

func (that *handlers) MoveHandler(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	player, err := entity.ParsePlayer(req.Player)
	if err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	board, move, err := that.matchManager.SuggestMove(r.Context(), req.Engine, req.Board, player)
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{Board: board, Move: move})
}

func (that *handlers) MatchHandler(w http.ResponseWriter, r *http.Request) {
	var req usecase.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := that.matchManager.Play(r.Context(), req)
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, result)
}

func (that *handlers) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	game, err := that.matchManager.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) DeleteGameHandler(w http.ResponseWriter, r *http.Request) {
	if err := that.matchManager.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidInput), errors.Is(err, apperror.ErrUnknownEngine):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNoLegalMove), errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, status int, err error) {
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
