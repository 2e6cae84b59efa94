package engine

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Kind - move selection strategy.
type Kind int

const (
	KindRandom Kind = iota
	KindWinning
	KindWinningOrBlocking
	KindMinimax
)

var kindNames = map[Kind]string{
	KindRandom:            "RandomMove",
	KindWinning:           "WinningMove",
	KindWinningOrBlocking: "WinningAndNotLosingMove",
	KindMinimax:           "MinMax",
}

func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownEngine, name)
}

func (that Kind) String() string {
	if name, ok := kindNames[that]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(that))
}

// Select dispatches to the strategy named by kind. The cache is only used by KindMinimax.
func (that *Engine) Select(kind Kind, grid entity.Grid, player entity.Player, cache Cache) (entity.Grid, error) {
	switch kind {
	case KindRandom:
		return that.Random(grid, player)
	case KindWinning:
		return that.Winning(grid, player)
	case KindWinningOrBlocking:
		return that.WinningOrBlocking(grid, player)
	case KindMinimax:
		return that.Minimax(grid, player, cache)
	default:
		return grid, fmt.Errorf("%w: %s", apperror.ErrUnknownEngine, kind)
	}
}
