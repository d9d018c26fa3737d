package board

import "errors"

var (
	// ErrIdenticalTiles means both players brought the same tile, so there is no game.
	ErrIdenticalTiles = errors.New("players have identical tiles")
	// ErrConverged is returned by NextGeneration once both backgrounds are equal.
	// It marks the end of the game, not a failure.
	ErrConverged      = errors.New("backgrounds converged")
	ErrStepFailed     = errors.New("generation step failed")
	ErrUnknownStorage = errors.New("unknown window storage")
)
