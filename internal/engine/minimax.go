package engine

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Minimax searches the whole game tree and plays the best scored move for player.
// X maximizes and O minimizes; on equal scores the earliest move in LegalMoves order
// is kept. Scores are memoized in cache, which may be shared between calls;
// a nil cache gets a fresh one.
func (that *Engine) Minimax(grid entity.Grid, player entity.Player, cache Cache) (entity.Grid, error) {
	moves := LegalMoves(grid)
	if len(moves) == 0 {
		return grid, fmt.Errorf("minimax move for %s: %w", player, apperror.ErrNoLegalMove)
	}

	if cache == nil {
		cache = NewMemoryCache()
	}

	var (
		best      entity.Grid
		bestMove  entity.Move
		bestScore Score
	)

	for i, move := range moves {
		next := play(grid, move, player)
		score := Evaluate(next, player.Opponent(), cache)

		if i == 0 || improves(player, score, bestScore) {
			best, bestMove, bestScore = next, move, score
		}
	}

	that.logger.Debug("minimax move", "player", player, "move", bestMove, "score", bestScore, "cached", cache.Len())

	return best, nil
}

// Evaluate scores grid with toMove to play next, assuming both sides play perfectly.
func Evaluate(grid entity.Grid, toMove entity.Player, cache Cache) Score {
	key := Position{Grid: grid, Player: toMove}.Key()
	if score, ok := cache.Get(key); ok {
		return score
	}

	score := evaluate(grid, toMove, cache)
	cache.Set(key, score)

	return score
}

func evaluate(grid entity.Grid, toMove entity.Player, cache Cache) Score {
	if winner, ok := grid.Winner(); ok {
		if winner == entity.PlayerX {
			return ScoreWinX
		}
		return ScoreWinO
	}

	moves := LegalMoves(grid)
	if len(moves) == 0 {
		return ScoreDraw
	}

	var best Score
	for i, move := range moves {
		score := Evaluate(play(grid, move, toMove), toMove.Opponent(), cache)
		if i == 0 || improves(toMove, score, best) {
			best = score
		}
	}

	return best
}

// improves reports whether score is strictly better than current for player.
func improves(player entity.Player, score, current Score) bool {
	if player == entity.PlayerX {
		return score > current
	}
	return score < current
}
