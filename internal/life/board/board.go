package board

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/cycle"
)

// Board is one generation of the strip: a window of disturbed tiles against
// the two periodic backgrounds. A Board is immutable; NextGeneration returns
// a new one.
type Board struct {
	bg         Background
	window     Window
	generation int
	opts       options
}

// New creates generation 0 for player A's tile a (x<0) and player B's tile b
// (x>=0). b is used as given; callers mirror it first when B's pattern should
// face x=0.
//
// Tiles of different sizes are a programming error and panic. Identical tiles
// return ErrIdenticalTiles. Cycle discovery for the two sides runs concurrently
// and its errors are returned wrapped.
func New(ctx context.Context, a, b *core.Tile, opts ...Option) (*Board, error) {
	if a.Size() != b.Size() {
		panic(fmt.Sprintf("board: tile sizes differ (%d vs %d)", a.Size(), b.Size()))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if a.Equal(b) {
		return nil, ErrIdenticalTiles
	}

	var bg Background
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := cycle.Discover(gctx, a, cycle.WithMaxPeriod(o.maxPeriod))
		if err != nil {
			return fmt.Errorf("player A tile: %w", err)
		}
		bg.A = c
		return nil
	})
	g.Go(func() error {
		c, err := cycle.Discover(gctx, b, cycle.WithMaxPeriod(o.maxPeriod))
		if err != nil {
			return fmt.Errorf("player B tile: %w", err)
		}
		bg.B = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.Debug().
		Int("tile_size", a.Size()).
		Int("cycle_a", bg.A.Len()).
		Int("cycle_b", bg.B.Len()).
		Str("storage", string(o.storage)).
		Msg("Discovered background cycles")

	return &Board{
		bg:     bg,
		window: newWindow(o.storage, 0, nil),
		opts:   o,
	}, nil
}

// NextGeneration advances the board by one generation.
//
// When both backgrounds become equal at the next generation the game is over:
// ErrConverged is returned and b remains the last valid generation.
func (b *Board) NextGeneration(ctx context.Context) (*Board, error) {
	gen := b.generation + 1
	if b.bg.Converged(gen) {
		return nil, ErrConverged
	}

	// A disturbance spreads at most one tile per generation.
	first, last := b.span()
	first--
	last++

	tiles, err := b.stepRange(ctx, first, last)
	if err != nil {
		return nil, err
	}

	return &Board{
		bg:         b.bg,
		window:     newWindow(b.opts.storage, first, tiles),
		generation: gen,
		opts:       b.opts,
	}, nil
}

// stepAt computes position x at the next generation, or nil when the result
// is the background tile for its side.
func (b *Board) stepAt(x int) *core.Tile {
	t := b.TileAt(x).NextGeneration(b.TileAt(x-1), b.TileAt(x+1))
	if t.Equal(b.bg.At(x, b.generation+1)) {
		return nil
	}
	return t
}

// span returns the tracked extrema, or the empty-window convention (0, -1).
func (b *Board) span() (int, int) {
	first, last, ok := b.window.Bounds()
	if !ok {
		return 0, -1
	}
	return first, last
}

// TileAt returns the tile at any position of the infinite strip.
func (b *Board) TileAt(x int) *core.Tile {
	if t, ok := b.window.Tile(x); ok {
		return t
	}
	return b.bg.At(x, b.generation)
}

func (b *Board) Generation() int { return b.generation }

// Bounds returns the tracked window extrema; ok is false when no position is
// disturbed.
func (b *Board) Bounds() (first, last int, ok bool) { return b.window.Bounds() }

func (b *Board) Window() Window         { return b.window }
func (b *Board) Background() Background { return b.bg }
func (b *Board) TileSize() int          { return b.bg.A.DefaultAt(0).Size() }
