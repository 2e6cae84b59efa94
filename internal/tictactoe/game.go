package tictactoe

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Result - outcome of one game. Winner is entity.PlayerTie on a draw.
type Result struct {
	Winner entity.Player
	Board  entity.Grid
	Moves  []entity.Move
}

// Referee runs the turn loop between two movers, X first.
type Referee struct {
	logger *slog.Logger
	output io.Writer
}

// NewReferee - the board is rendered to output after every turn; nil output renders nothing.
func NewReferee(logger *slog.Logger, output io.Writer) *Referee {
	if output == nil {
		output = io.Discard
	}

	return &Referee{
		logger: logger.With("component", "referee"),
		output: output,
	}
}

func (that *Referee) Play(ctx context.Context, playerX, playerO Mover) (*Result, error) {
	log := that.logger.With("method", "Play")

	movers := map[entity.Player]Mover{
		entity.PlayerX: playerX,
		entity.PlayerO: playerO,
	}

	grid := entity.NewGrid()
	active := entity.PlayerX
	result := &Result{}

	fmt.Fprintln(that.output, grid)

	for !grid.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game interrupted: %w", err)
		}

		next, err := movers[active].Move(ctx, grid, active)
		if err != nil {
			return nil, fmt.Errorf("player %s failed to move: %w", active, err)
		}

		move, err := validateTurn(grid, next, active)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", active, err)
		}

		log.Debug("turn played", "player", active, "move", move)

		grid = next
		result.Moves = append(result.Moves, move)
		fmt.Fprintln(that.output, grid)

		active = active.Opponent()
	}

	result.Board = grid
	result.Winner = entity.PlayerTie
	if winner, ok := grid.Winner(); ok {
		result.Winner = winner
	}

	log.Info("game over", "winner", result.Winner, "moves", len(result.Moves))

	return result, nil
}

// validateTurn - checks that after is before plus exactly one mark of player.
func validateTurn(before, after entity.Grid, player entity.Player) (entity.Move, error) {
	diff := before.Diff(after)
	if len(diff) != 1 {
		return entity.Move{}, fmt.Errorf("%w: %d cells changed", apperror.ErrInvalidMove, len(diff))
	}

	move := diff[0]
	if before.Cell(move) != entity.EmptyCell {
		return move, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	if after.Cell(move) != player.Mark() {
		return move, fmt.Errorf("%w: %s holds %q", apperror.ErrInvalidMove, move, after.Cell(move))
	}

	return move, nil
}
