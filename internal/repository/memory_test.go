package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns a copy", func(t *testing.T) {
		// Given: a stored game
		gameRepo := NewMemoryGameRepository()
		game := newRecord("abc")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller mutates its own record afterwards
		game.Moves[0] = entity.Move{Row: 2, Col: 2}

		// Then: the stored record is unaffected
		retrievedGame, err := gameRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, retrievedGame.Moves[0])
		assert.Equal(t, entity.PlayerX, retrievedGame.Winner)
	})

	t.Run("Not found", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		_, err := gameRepo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, ErrGameNotFound)

		err = gameRepo.DeleteByID(ctx, "missing")
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("Delete removes the game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newRecord("abc")))

		require.NoError(t, gameRepo.DeleteByID(ctx, "abc"))

		_, err := gameRepo.GetByID(ctx, "abc")
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
