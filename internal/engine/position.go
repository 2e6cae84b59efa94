package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Score - outcome of a position under optimal play, from X's point of view.
type Score int8

const (
	ScoreWinX Score = 10
	ScoreDraw Score = 0
	ScoreWinO Score = -10
)

// Key - compact identifier of a Position, used by score caches.
type Key uint32

// Position - a grid together with the player who moves next.
type Position struct {
	Grid   entity.Grid
	Player entity.Player
}

// Key encodes the nine cells in base 3 followed by one bit for the side to move,
// so two positions share a key only if both the grid and the mover are equal.
func (that Position) Key() Key {
	var key Key
	for _, row := range that.Grid {
		for _, cell := range row {
			key *= 3
			switch cell {
			case entity.MarkX:
				key++
			case entity.MarkO:
				key += 2
			}
		}
	}

	key <<= 1
	if that.Player == entity.PlayerO {
		key |= 1
	}

	return key
}
