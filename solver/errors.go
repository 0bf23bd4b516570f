package solver

import "errors"

var (
	// ErrNoTileTypes is returned when a Problem names zero tile types;
	// the exact-cover matrix would have no rows at all.
	ErrNoTileTypes = errors.New("solver: at least one tile type is required")

	// ErrInvalidPayload wraps a validator.v10 failure on the decoded
	// wire payload; see the wrapped error for field-level detail.
	ErrInvalidPayload = errors.New("solver: invalid payload")

	// ErrMalformedHole is returned when a Payload hole string is not a
	// well-formed "x,y" coordinate pair.
	ErrMalformedHole = errors.New("solver: malformed hole coordinate")
)
