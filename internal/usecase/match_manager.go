package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const MaxIterations = 10000

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

// MatchRequest - play Iterations games between the engines named X and O.
type MatchRequest struct {
	X          string `json:"x"`
	O          string `json:"o"`
	Iterations int    `json:"iterations"`
}

type MatchResult struct {
	Tally   entity.Tally `json:"tally"`
	GameIDs []string     `json:"game_ids"`
}

// MatchManager plays and stores games. Engine calls are serialized: the engine
// and the shared minimax cache are single threaded.
type MatchManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	referee  *tictactoe.Referee
	human    *tictactoe.Human

	mu           sync.Mutex
	engine       *engine.Engine
	cache        engine.Cache
	isolateCache bool
}

// NewMatchManager - human may be nil, then the Human engine is refused.
func NewMatchManager(
	logger *slog.Logger,
	gameRepo gameRepo,
	eng *engine.Engine,
	referee *tictactoe.Referee,
	human *tictactoe.Human,
	isolateCache bool,
) *MatchManager {
	return &MatchManager{
		logger:       logger.With("component", "match_manager"),
		gameRepo:     gameRepo,
		referee:      referee,
		human:        human,
		engine:       eng,
		cache:        engine.NewMemoryCache(),
		isolateCache: isolateCache,
	}
}

func (that *MatchManager) Play(ctx context.Context, req MatchRequest) (*MatchResult, error) {
	log := that.logger.With("method", "Play", "x", req.X, "o", req.O)

	if req.Iterations < 1 || req.Iterations > MaxIterations {
		return nil, fmt.Errorf("%w: iterations must be in [1..%d]", apperror.ErrInvalidInput, MaxIterations)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	result := &MatchResult{GameIDs: make([]string, 0, req.Iterations)}
	for i := range req.Iterations {
		record, err := that.playGame(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("game %d failed: %w", i+1, err)
		}

		if err = that.gameRepo.CreateOrUpdate(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save game: %w", err)
		}

		result.Tally.Add(record.Winner)
		result.GameIDs = append(result.GameIDs, record.ID)
	}

	log.Info("match finished", "x_wins", result.Tally.XWins, "o_wins", result.Tally.OWins, "draws", result.Tally.Draws)

	return result, nil
}

func (that *MatchManager) playGame(ctx context.Context, req MatchRequest) (*entity.GameRecord, error) {
	cache := that.cache
	if that.isolateCache {
		cache = engine.NewMemoryCache()
	}

	playerX, err := tictactoe.NewMover(req.X, that.engine, cache, that.human)
	if err != nil {
		return nil, fmt.Errorf("player X: %w", err)
	}

	playerO, err := tictactoe.NewMover(req.O, that.engine, cache, that.human)
	if err != nil {
		return nil, fmt.Errorf("player O: %w", err)
	}

	result, err := that.referee.Play(ctx, playerX, playerO)
	if err != nil {
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	return &entity.GameRecord{
		ID:         uuid.NewString(),
		EngineX:    req.X,
		EngineO:    req.O,
		Moves:      result.Moves,
		Board:      result.Board,
		Winner:     result.Winner,
		FinishedAt: time.Now().UTC(),
	}, nil
}

// SuggestMove - one move of the named engine for player on grid, using the shared cache.
func (that *MatchManager) SuggestMove(
	_ context.Context, engineName string, grid entity.Grid, player entity.Player,
) (entity.Grid, entity.Move, error) {
	kind, err := engine.ParseKind(engineName)
	if err != nil {
		return grid, entity.Move{}, fmt.Errorf("failed to parse engine: %w", err)
	}

	if err = grid.Validate(); err != nil {
		return grid, entity.Move{}, fmt.Errorf("failed to validate board: %w", err)
	}

	if _, won := grid.Winner(); won {
		return grid, entity.Move{}, apperror.ErrGameFinished
	}

	that.mu.Lock()
	next, err := that.engine.Select(kind, grid, player, that.cache)
	that.mu.Unlock()

	if err != nil {
		return grid, entity.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	return next, grid.Diff(next)[0], nil
}

func (that *MatchManager) GetGame(ctx context.Context, id string) (*entity.GameRecord, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *MatchManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
