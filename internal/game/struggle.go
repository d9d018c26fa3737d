package game

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mitchelldurbincs/LifeStruggle/internal/life/board"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
)

// Struggle plays a against b for the given number of generations. b is
// mirrored so both patterns face the boundary at x=0.
//
// Identical tiles and converged backgrounds are draws and score (0, 0).
// Any other error, including a tile without a cycle, is returned.
func Struggle(ctx context.Context, generations int, a, b core.Source, opts ...Option) (Result, error) {
	ta := core.FromSource(a)
	tb := core.FromSource(b).Mirror()

	m, err := NewMatch(ctx, ta, tb, generations, opts...)
	if errors.Is(err, board.ErrIdenticalTiles) {
		o := defaultMatchOptions()
		for _, opt := range opts {
			opt(&o)
		}
		if o.id == "" {
			o.id = uuid.NewString()
		}
		o.logger.Info().Str("match_id", o.id).Msg("Identical tiles, match is a draw")
		return Result{ID: o.id, Identical: true, Phase: PhaseFinished}, nil
	}
	if err != nil {
		return Result{}, err
	}
	return m.Run(ctx)
}
