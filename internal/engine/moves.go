package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// LegalMoves lists every empty cell, rows top to bottom and columns left to right.
func LegalMoves(grid entity.Grid) []entity.Move {
	moves := make([]entity.Move, 0, entity.Size*entity.Size)
	for r := range entity.Size {
		for c := range entity.Size {
			move := entity.Move{Row: r, Col: c}
			if grid.Cell(move) == entity.EmptyCell {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

// play puts player's mark on a cell returned by LegalMoves.
func play(grid entity.Grid, move entity.Move, player entity.Player) entity.Grid {
	grid[move.Row][move.Col] = player.Mark()
	return grid
}
