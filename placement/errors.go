package placement

import "errors"

// ErrNilBoard indicates Enumerate was called with a nil *board.Board.
var ErrNilBoard = errors.New("placement: board is nil")
