package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const Size = 3

// Mark - content of a single cell.
type Mark string

const (
	EmptyCell Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Move - a (row, column) coordinate, both in [0, Size).
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

func (that Move) inRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// WinCombos - the 8 lines of three: rows, then columns, then diagonals.
var WinCombos = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Grid - the 3x3 board. It is a value: every change returns a new Grid.
type Grid [Size][Size]Mark

func NewGrid() Grid {
	return Grid{}
}

func (that Grid) Cell(move Move) Mark {
	return that[move.Row][move.Col]
}

// IsLegal reports whether move is on the board and targets an empty cell.
func (that Grid) IsLegal(move Move) bool {
	return move.inRange() && that.Cell(move) == EmptyCell
}

// Place returns a copy of the grid with player's mark at move.
func (that Grid) Place(move Move, player Player) (Grid, error) {
	if !move.inRange() {
		return that, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if that.Cell(move) != EmptyCell {
		return that, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	that[move.Row][move.Col] = player.Mark()

	return that, nil
}

// Winner returns the owner of the first complete line in WinCombos order.
func (that Grid) Winner() (Player, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.Cell(combo[0]), that.Cell(combo[1]), that.Cell(combo[2])
		if a != EmptyCell && a == b && b == c {
			return Player(a), true
		}
	}

	return "", false
}

func (that Grid) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// IsTerminal reports whether the game is over: somebody won or no cell is left.
func (that Grid) IsTerminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return that.IsFull()
}

// Diff lists, in row-major order, the cells whose content differs between the grids.
func (that Grid) Diff(other Grid) []Move {
	var moves []Move
	for r := range Size {
		for c := range Size {
			if that[r][c] != other[r][c] {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}

	return moves
}

// Validate checks that every cell holds a known mark.
func (that Grid) Validate() error {
	for r, row := range that {
		for c, cell := range row {
			switch cell {
			case EmptyCell, MarkX, MarkO:
			default:
				return fmt.Errorf("%w: cell %d,%d holds %q", apperror.ErrInvalidInput, r, c, cell)
			}
		}
	}

	return nil
}

// String renders the grid with row and column indexes:
//
//	  0 1 2
//	 -------
//	0 X   O
func (that Grid) String() string {
	var sb strings.Builder

	sb.WriteString("  0 1 2\n")
	sb.WriteString(" -------\n")
	for r, row := range that {
		sb.WriteString(strconv.Itoa(r))
		for _, cell := range row {
			sb.WriteByte(' ')
			if cell == EmptyCell {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(string(cell))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
