package board

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
)

// stepRange computes positions first..last of the next generation. Every
// position only reads the current board, so they run independently; the first
// failure cancels the rest and fails the whole step.
func (b *Board) stepRange(ctx context.Context, first, last int) ([]*core.Tile, error) {
	tiles := make([]*core.Tile, last-first+1)

	if len(tiles) < b.opts.threshold || b.opts.workers <= 1 {
		for i := range tiles {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			t, err := b.safeStep(first + i)
			if err != nil {
				return nil, err
			}
			tiles[i] = t
		}
		return tiles, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.workers)
	for i := range tiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := b.safeStep(first + i)
			if err != nil {
				return err
			}
			tiles[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tiles, nil
}

// safeStep turns a panic in the tile rule (e.g. a malformed tile) into an error
// so it reaches the caller instead of killing a worker goroutine.
func (b *Board) safeStep(x int) (t *core.Tile, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: position %d: %v", ErrStepFailed, x, r)
		}
	}()
	return b.stepAt(x), nil
}
