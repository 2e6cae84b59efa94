package engine

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.EmptyCell
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(logger, rand.New(rand.NewSource(42))) //nolint: gosec // deterministic tests
}

// reachablePositions walks every position of a regular game, X first,
// and returns the ones where a move is still to be made.
func reachablePositions() []Position {
	seen := map[Key]bool{}
	queue := []Position{{Grid: entity.NewGrid(), Player: entity.PlayerX}}

	var positions []Position
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		if seen[pos.Key()] || pos.Grid.IsTerminal() {
			continue
		}
		seen[pos.Key()] = true
		positions = append(positions, pos)

		for _, move := range LegalMoves(pos.Grid) {
			next, _ := pos.Grid.Place(move, pos.Player)
			queue = append(queue, Position{Grid: next, Player: pos.Player.Opponent()})
		}
	}

	return positions
}

// requireSingleMove checks that after is before plus exactly one mark of player
// on a previously empty cell, and returns that cell.
func requireSingleMove(t *testing.T, before, after entity.Grid, player entity.Player) entity.Move {
	t.Helper()

	diff := before.Diff(after)
	require.Len(t, diff, 1)
	require.Equal(t, entity.EmptyCell, before.Cell(diff[0]))
	require.Equal(t, player.Mark(), after.Cell(diff[0]))

	return diff[0]
}

// firstWinningMove returns the first move in scan order that wins for player.
func firstWinningMove(grid entity.Grid, player entity.Player) (entity.Move, bool) {
	for _, move := range LegalMoves(grid) {
		next, _ := grid.Place(move, player)
		if winner, ok := next.Winner(); ok && winner == player {
			return move, true
		}
	}

	return entity.Move{}, false
}
