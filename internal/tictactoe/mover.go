package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// HumanEngine - engine name that selects a human player.
const HumanEngine = "Human"

// Mover - anything able to play a turn: an engine or a human.
type Mover interface {
	Move(ctx context.Context, grid entity.Grid, player entity.Player) (entity.Grid, error)
}

type engineMover struct {
	engine *engine.Engine
	kind   engine.Kind
	cache  engine.Cache
}

func (that *engineMover) Move(_ context.Context, grid entity.Grid, player entity.Player) (entity.Grid, error) {
	next, err := that.engine.Select(that.kind, grid, player, that.cache)
	if err != nil {
		return grid, fmt.Errorf("%s failed to move: %w", that.kind, err)
	}

	return next, nil
}

// NewMover - builds the mover for an engine name. The cache is handed to minimax;
// human may be nil when no terminal is attached.
func NewMover(name string, eng *engine.Engine, cache engine.Cache, human *Human) (Mover, error) {
	if name == HumanEngine {
		if human == nil {
			return nil, fmt.Errorf("%w: no human player available", apperror.ErrUnknownEngine)
		}

		return human, nil
	}

	kind, err := engine.ParseKind(name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse engine: %w", err)
	}

	return &engineMover{
		engine: eng,
		kind:   kind,
		cache:  cache,
	}, nil
}
