package core

import "errors"

var (
	ErrMalformedTile = errors.New("malformed tile")
)
