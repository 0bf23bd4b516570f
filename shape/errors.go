package shape

import "errors"

// Sentinel errors for tile-type construction.
var (
	// ErrEmptyBase indicates a tile type's base shape has no cells.
	ErrEmptyBase = errors.New("shape: base shape must be non-empty")

	// ErrDuplicateCell indicates a base shape lists the same offset twice.
	ErrDuplicateCell = errors.New("shape: base shape has duplicate cells")

	// ErrNegativeCount indicates a tile type's stock count is negative.
	ErrNegativeCount = errors.New("shape: count must be non-negative")
)
