package patterns

import "errors"

var (
	ErrUnknownPattern = errors.New("unknown pattern")
	ErrTooSmall       = errors.New("pattern does not fit tile")
	ErrSizeMismatch   = errors.New("pattern size mismatch")
)
