package apperror

import "errors"

var (
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrInvalidPosition = errors.New("invalid position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameFinished    = errors.New("game is already finished")
	ErrInputExhausted  = errors.New("no more input")
	ErrTooManyAttempts = errors.New("too many invalid moves")
)
