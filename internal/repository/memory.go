package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memoryGame struct {
	mu    sync.RWMutex
	games map[string]entity.GameRecord
}

// NewMemoryGameRepository - GameRepository kept in process memory, used when Redis is not configured.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.GameRecord),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.GameRecord) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored := *game
	stored.Moves = append([]entity.Move(nil), game.Moves...)
	that.games[game.ID] = stored

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.GameRecord, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}

	game.Moves = append([]entity.Move(nil), game.Moves...)

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
