package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameNotFound = errors.New("game not found")
	ErrUnknownMode  = errors.New("unknown game mode")
	ErrUnknownMark  = errors.New("unknown mark")
)
