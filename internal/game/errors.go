package game

import "errors"

var (
	ErrMatchOver         = errors.New("match is over")
	ErrInvalidTransition = errors.New("invalid phase transition")
)
