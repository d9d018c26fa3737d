package board

import (
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/cycle"
)

// Background describes the infinite strip outside the tracked window:
// player A's orbit for x<0 and player B's for x>=0.
type Background struct {
	A *cycle.Cycle
	B *cycle.Cycle
}

// At returns the untouched tile at position x for the given generation.
func (bg Background) At(x, generation int) *core.Tile {
	if x < 0 {
		return bg.A.DefaultAt(generation)
	}
	return bg.B.DefaultAt(generation)
}

// Converged reports whether both sides look the same at the given
// generation, after which the two players can no longer be told apart.
func (bg Background) Converged(generation int) bool {
	return bg.A.DefaultAt(generation).Equal(bg.B.DefaultAt(generation))
}
