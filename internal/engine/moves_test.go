package engine

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestLegalMoves(t *testing.T) {
	t.Run("Lists empty cells row by row", func(t *testing.T) {
		// Given: a grid with four empty cells
		grid := entity.Grid{{o, x, e}, {e, e, o}, {e, x, x}}

		// When: enumerating legal moves
		moves := LegalMoves(grid)

		// Then: they come top to bottom, left to right
		expected := []entity.Move{{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}
		assert.Equal(t, expected, moves)
	})

	t.Run("Every cell of an empty grid", func(t *testing.T) {
		moves := LegalMoves(entity.NewGrid())

		assert.Len(t, moves, 9)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, moves[0])
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, moves[8])
	})

	t.Run("Nothing on a full grid", func(t *testing.T) {
		assert.Empty(t, LegalMoves(entity.Grid{{x, o, x}, {x, o, o}, {o, x, x}}))
	})
}

func TestPosition_Key(t *testing.T) {
	t.Run("Mover is part of the key", func(t *testing.T) {
		grid := entity.Grid{{x, e, e}, {e, o, e}, {e, e, e}}

		keyX := Position{Grid: grid, Player: entity.PlayerX}.Key()
		keyO := Position{Grid: grid, Player: entity.PlayerO}.Key()

		assert.NotEqual(t, keyX, keyO)
	})

	t.Run("Empty grid", func(t *testing.T) {
		assert.Equal(t, Key(0), Position{Grid: entity.NewGrid(), Player: entity.PlayerX}.Key())
		assert.Equal(t, Key(1), Position{Grid: entity.NewGrid(), Player: entity.PlayerO}.Key())
	})

	t.Run("No collisions between reachable positions", func(t *testing.T) {
		// Given: every position of a regular game, asked for both movers
		keys := map[Key]Position{}

		for _, pos := range reachablePositions() {
			for _, player := range []entity.Player{entity.PlayerX, entity.PlayerO} {
				candidate := Position{Grid: pos.Grid, Player: player}

				// Then: a key is never shared by two different positions
				if other, ok := keys[candidate.Key()]; ok {
					assert.Equal(t, other, candidate)
				}
				keys[candidate.Key()] = candidate
			}
		}
	})
}
