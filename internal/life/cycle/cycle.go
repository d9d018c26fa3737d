package cycle

import (
	"context"
	"fmt"

	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
)

// Cycle is the periodic orbit of a tile repeated infinitely in both
// directions. It is what every untouched board position holds at a given
// generation.
type Cycle struct {
	tiles []*core.Tile
}

type options struct {
	maxPeriod int
}

// Option configures discovery.
type Option func(*options)

// WithMaxPeriod bounds the number of tiles discovery may collect.
// Zero or negative means unbounded.
func WithMaxPeriod(n int) Option {
	return func(o *options) { o.maxPeriod = n }
}

// step evolves a tile with itself as both neighbours.
func step(t *core.Tile) *core.Tile {
	return t.NextGeneration(t, t)
}

// Discover evolves t0 until it returns to t0 exactly. If the orbit settles
// into a loop that does not contain t0, ErrNoCycle is returned.
func Discover(ctx context.Context, t0 *core.Tile, opts ...Option) (*Cycle, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	seq := []*core.Tile{t0}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next := step(seq[len(seq)-1])
		if next.Equal(t0) {
			return &Cycle{tiles: seq}, nil
		}
		seq = append(seq, next)

		if DetectLoop(seq, (*core.Tile).Equal) {
			return nil, fmt.Errorf("%w: loop found after %d generations", ErrNoCycle, len(seq)-1)
		}
		if o.maxPeriod > 0 && len(seq) > o.maxPeriod {
			return nil, fmt.Errorf("%w: exceeded %d generations", ErrPeriodTooLong, o.maxPeriod)
		}
	}
}

// DetectLoop is the incremental form of Floyd's tortoise and hare over a
// sequence that grows by one element per call: the hare is the last element
// and the tortoise the element halfway along. It reports true once both sit
// on the same point of a loop.
func DetectLoop[T any](seq []T, equal func(a, b T) bool) bool {
	n := len(seq)
	if n < 3 {
		return false
	}
	return equal(seq[n/2], seq[n-1])
}

// Settle returns the first tile of the loop t0 eventually falls into. A tile
// that already lies on its own orbit is returned unchanged.
func Settle(ctx context.Context, t0 *core.Tile, opts ...Option) (*core.Tile, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	seq := []*core.Tile{t0}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next := step(seq[len(seq)-1])
		if next.Equal(t0) {
			return t0, nil
		}
		seq = append(seq, next)

		if DetectLoop(seq, (*core.Tile).Equal) {
			// The distance between tortoise and hare is a multiple of the
			// period, so the first index that matches the element that far
			// ahead is where the loop starts.
			n := len(seq)
			dist := n - 1 - n/2
			for i := 0; i+dist < n; i++ {
				if seq[i].Equal(seq[i+dist]) {
					return seq[i], nil
				}
			}
			panic("cycle: loop detected without a repeated tile")
		}
		if o.maxPeriod > 0 && len(seq) > o.maxPeriod {
			return nil, fmt.Errorf("%w: exceeded %d generations", ErrPeriodTooLong, o.maxPeriod)
		}
	}
}

// Len returns the period.
func (c *Cycle) Len() int { return len(c.tiles) }

// DefaultAt returns the tile an untouched position holds at generation g.
func (c *Cycle) DefaultAt(g int) *core.Tile {
	if g < 0 {
		panic(fmt.Sprintf("cycle: negative generation %d", g))
	}
	return c.tiles[g%len(c.tiles)]
}

// Tiles returns the orbit in order, starting from the discovered tile.
func (c *Cycle) Tiles() []*core.Tile {
	out := make([]*core.Tile, len(c.tiles))
	copy(out, c.tiles)
	return out
}
