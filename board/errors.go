package board

import "errors"

// Sentinel errors for board construction.
var (
	// ErrInvalidDimensions indicates W or H is not a positive integer.
	ErrInvalidDimensions = errors.New("board: width and height must be positive")

	// ErrHoleOutOfBounds indicates a hole cell lies outside [0,W)×[0,H).
	ErrHoleOutOfBounds = errors.New("board: hole cell out of bounds")

	// ErrNoFreeCells indicates every cell on the board is a hole, leaving
	// nothing for the search to cover.
	ErrNoFreeCells = errors.New("board: no free cells remain after holes")
)
