package engine

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Random(t *testing.T) {
	t.Run("Never plays an occupied cell", func(t *testing.T) {
		// Given: a grid with three empty cells
		eng := newTestEngine(t)
		grid := entity.Grid{{o, x, o}, {e, o, e}, {e, x, x}}

		for range 33 {
			// When: a random move is requested
			next, err := eng.Random(grid, entity.PlayerO)
			require.NoError(t, err)

			// Then: one of the empty cells gets O
			move := requireSingleMove(t, grid, next, entity.PlayerO)
			assert.Contains(t, LegalMoves(grid), move)
		}
	})

	t.Run("Spreads choices over all legal moves", func(t *testing.T) {
		// Given: a grid with three empty cells
		eng := newTestEngine(t)
		grid := entity.Grid{{o, x, o}, {e, o, e}, {e, x, x}}

		// When: many random moves are requested
		counts := map[entity.Move]int{}
		for range 3000 {
			next, err := eng.Random(grid, entity.PlayerX)
			require.NoError(t, err)
			counts[grid.Diff(next)[0]]++
		}

		// Then: every empty cell is picked roughly a third of the time
		require.Len(t, counts, 3)
		for move, count := range counts {
			assert.InDelta(t, 1000, count, 200, "move %s", move)
		}
	})
}

func TestEngine_Winning(t *testing.T) {
	t.Run("Completes a line when it can", func(t *testing.T) {
		// Given: X can finish column 1 at 1,1 or row 2 at 2,0
		eng := newTestEngine(t)
		grid := entity.Grid{{o, x, e}, {e, e, o}, {e, x, x}}

		// When: asking for a winning move
		next, err := eng.Winning(grid, entity.PlayerX)
		require.NoError(t, err)

		// Then: the first winning cell in scan order is played
		expected := entity.Grid{{o, x, e}, {e, x, o}, {e, x, x}}
		assert.Equal(t, expected, next)

		winner, ok := next.Winner()
		require.True(t, ok)
		assert.Equal(t, entity.PlayerX, winner)
	})

	t.Run("Falls back to a random legal move", func(t *testing.T) {
		// Given: no immediate win for O
		eng := newTestEngine(t)
		grid := entity.Grid{{x, e, e}, {e, e, e}, {e, e, e}}

		// When: asking for a winning move
		next, err := eng.Winning(grid, entity.PlayerO)
		require.NoError(t, err)

		// Then: some legal move is still played
		requireSingleMove(t, grid, next, entity.PlayerO)
	})
}

func TestEngine_WinningOrBlocking(t *testing.T) {
	t.Run("Blocks the opponent's line", func(t *testing.T) {
		// Given: X threatens column 1 and O has no win
		eng := newTestEngine(t)
		grid := entity.Grid{{o, x, e}, {e, x, o}, {e, e, e}}

		// When: O asks for a winning or blocking move
		next, err := eng.WinningOrBlocking(grid, entity.PlayerO)
		require.NoError(t, err)

		// Then: O takes 2,1
		expected := entity.Grid{{o, x, e}, {e, x, o}, {e, o, e}}
		assert.Equal(t, expected, next)
	})

	t.Run("Prefers winning over blocking", func(t *testing.T) {
		// Given: both X and O have an open line, O to move
		eng := newTestEngine(t)
		grid := entity.Grid{{x, x, e}, {o, o, e}, {x, e, e}}

		// When: O asks for a winning or blocking move
		next, err := eng.WinningOrBlocking(grid, entity.PlayerO)
		require.NoError(t, err)

		// Then: O completes its own row
		winner, ok := next.Winner()
		require.True(t, ok)
		assert.Equal(t, entity.PlayerO, winner)
	})
}

func TestEngines_ReturnValidGrids(t *testing.T) {
	// Given: every position of a regular game
	eng := newTestEngine(t)
	cache := NewMemoryCache()

	for _, pos := range reachablePositions() {
		for _, kind := range []Kind{KindRandom, KindWinning, KindWinningOrBlocking, KindMinimax} {
			// When: any engine moves
			next, err := eng.Select(kind, pos.Grid, pos.Player, cache)
			require.NoError(t, err)

			// Then: exactly one empty cell now holds the mover's mark
			requireSingleMove(t, pos.Grid, next, pos.Player)
		}
	}
}

func TestEngines_WinAndBlockCorrectness(t *testing.T) {
	eng := newTestEngine(t)

	for _, pos := range reachablePositions() {
		win, canWin := firstWinningMove(pos.Grid, pos.Player)
		threat, mustBlock := firstWinningMove(pos.Grid, pos.Player.Opponent())

		winning, err := eng.Winning(pos.Grid, pos.Player)
		require.NoError(t, err)

		guarded, err := eng.WinningOrBlocking(pos.Grid, pos.Player)
		require.NoError(t, err)

		switch {
		case canWin:
			assert.Equal(t, []entity.Move{win}, pos.Grid.Diff(winning))
			assert.Equal(t, []entity.Move{win}, pos.Grid.Diff(guarded))
		case mustBlock:
			assert.Equal(t, []entity.Move{threat}, pos.Grid.Diff(guarded))
		}
	}
}

func TestEngines_NoLegalMove(t *testing.T) {
	eng := newTestEngine(t)
	full := entity.Grid{{x, o, x}, {x, o, o}, {o, x, x}}

	for _, kind := range []Kind{KindRandom, KindWinning, KindWinningOrBlocking, KindMinimax} {
		t.Run(kind.String(), func(t *testing.T) {
			// When: asking for a move on a full board
			next, err := eng.Select(kind, full, entity.PlayerX, NewMemoryCache())

			// Then: ErrNoLegalMove is returned and the grid is untouched
			require.ErrorIs(t, err, apperror.ErrNoLegalMove)
			assert.Equal(t, full, next)
		})
	}
}
