package patterns

import (
	"math/rand/v2"

	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
)

// Random fills a tile so that each cell is alive with probability density.
// The same seed always yields the same tile.
func Random(size int, density float64, seed int64) *core.Tile {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	t := core.New(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if rng.Float64() < density {
				t.Set(x, y, true)
			}
		}
	}
	return t
}
