package apperror

import "errors"

var (
	ErrNoLegalMove   = errors.New("no legal move")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidMove   = errors.New("invalid move")
	ErrUnknownEngine = errors.New("unknown engine")
	ErrGameFinished  = errors.New("game is already finished")
	ErrInvalidInput  = errors.New("invalid input")
)
