package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine selects moves. Every selection returns a new grid that differs from the
// given one by exactly one cell holding the mover's mark.
//
// An Engine is not safe for concurrent use: it owns a random source.
type Engine struct {
	logger *slog.Logger
	rng    *rand.Rand
}

// New - creates an engine. A nil rng is replaced by a time seeded source.
func New(logger *slog.Logger, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game moves, not secrets
	}

	return &Engine{
		logger: logger.With("component", "engine"),
		rng:    rng,
	}
}

// Random plays a uniformly chosen empty cell.
func (that *Engine) Random(grid entity.Grid, player entity.Player) (entity.Grid, error) {
	moves := LegalMoves(grid)
	if len(moves) == 0 {
		return grid, fmt.Errorf("random move for %s: %w", player, apperror.ErrNoLegalMove)
	}

	move := moves[that.rng.Intn(len(moves))]
	that.logger.Debug("random move", "player", player, "move", move)

	return play(grid, move, player), nil
}

// Winning plays the first move that wins on the spot, otherwise a random one.
func (that *Engine) Winning(grid entity.Grid, player entity.Player) (entity.Grid, error) {
	if next, ok := winningGrid(grid, player); ok {
		that.logger.Debug("winning move", "player", player)
		return next, nil
	}

	return that.Random(grid, player)
}

// WinningOrBlocking wins on the spot if it can. Failing that it takes the cell the
// opponent would win with next turn, and falls back to a random move.
func (that *Engine) WinningOrBlocking(grid entity.Grid, player entity.Player) (entity.Grid, error) {
	if next, ok := winningGrid(grid, player); ok {
		that.logger.Debug("winning move", "player", player)
		return next, nil
	}

	if threat, ok := winningGrid(grid, player.Opponent()); ok {
		cell := grid.Diff(threat)[0]
		that.logger.Debug("blocking move", "player", player, "move", cell)

		return play(grid, cell, player), nil
	}

	return that.Random(grid, player)
}

// winningGrid returns the grid after the first legal move that completes a line for player.
func winningGrid(grid entity.Grid, player entity.Player) (entity.Grid, bool) {
	for _, move := range LegalMoves(grid) {
		next := play(grid, move, player)
		if winner, ok := next.Winner(); ok && winner == player {
			return next, true
		}
	}

	return grid, false
}
