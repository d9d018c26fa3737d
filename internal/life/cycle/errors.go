package cycle

import "errors"

var (
	// ErrNoCycle means the tile's orbit never returns to the tile itself.
	ErrNoCycle       = errors.New("tile never returns to its starting state")
	ErrPeriodTooLong = errors.New("tile period exceeds limit")
)
