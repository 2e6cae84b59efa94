package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

// Human reads moves typed as "row,col" from a terminal.
type Human struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewHuman(reader io.Reader, writer io.Writer) *Human {
	return &Human{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// PrintRules - explains the input format.
func (that *Human) PrintRules() {
	fmt.Fprintln(that.writer, "\nPlease input your move. Format : row (from 0 to 2) , column (from 0 to 2)")
	fmt.Fprintln(that.writer, "Example : > 1,2")
	fmt.Fprintln(that.writer, "Coordinates : ")
	fmt.Fprint(that.writer, entity.NewGrid().String())
}

// Move asks until a legal move is typed. Bad lines are reported and asked again.
func (that *Human) Move(ctx context.Context, grid entity.Grid, player entity.Player) (entity.Grid, error) {
	for {
		if err := ctx.Err(); err != nil {
			return grid, fmt.Errorf("human move: %w", err)
		}

		fmt.Fprintf(that.writer, "Player %s > ", player)

		line, err := that.reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return grid, fmt.Errorf("failed to read move: %w", err)
			}

			// a last line without newline is still a move
			if strings.TrimSpace(line) == "" {
				return grid, ErrInputClosed
			}
		}

		move, err := ParseMove(line)
		if err == nil {
			var next entity.Grid
			if next, err = grid.Place(move, player); err == nil {
				return next, nil
			}
		}

		fmt.Fprintf(that.writer, "Error : %v \nTry again\n", err)
	}
}

// ParseMove - parses "row,col", spaces around either number are allowed.
func ParseMove(input string) (entity.Move, error) {
	parts := strings.Split(strings.TrimSpace(input), ",")
	if len(parts) != 2 {
		return entity.Move{}, fmt.Errorf("%w: expected row,col", apperror.ErrInvalidInput)
	}

	var coords [2]int
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 0 || value >= entity.Size {
			return entity.Move{}, fmt.Errorf("%w: coordinates not included in [0..2],[0..2]", apperror.ErrInvalidInput)
		}
		coords[i] = value
	}

	return entity.Move{Row: coords[0], Col: coords[1]}, nil
}
