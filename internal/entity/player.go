package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player - one of the two sides. X always moves first.
type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"

	// PlayerTie marks a finished game without a winner.
	PlayerTie Player = "-"
)

func ParsePlayer(s string) (Player, error) {
	switch Player(s) {
	case PlayerX:
		return PlayerX, nil
	case PlayerO:
		return PlayerO, nil
	default:
		return "", fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidInput, s)
	}
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) Mark() Mark {
	return Mark(that)
}
