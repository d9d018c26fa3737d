package board

import (
	"fmt"

	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
)

// Window is the bounded set of explicitly stored tiles over the infinite strip.
// It holds exactly the positions whose tile differs from the background at the
// board's generation, and is never modified after construction.
type Window interface {
	// Bounds returns the lowest and highest stored positions; ok is false
	// when nothing is stored.
	Bounds() (first, last int, ok bool)
	// Tile returns the stored tile at x, if any.
	Tile(x int) (*core.Tile, bool)
	// Positions lists stored positions in ascending order.
	Positions() []int
	Len() int
	Storage() Storage
}

// Storage selects a Window implementation.
type Storage string

const (
	// StorageContiguous keeps a slice with an offset; gaps are nil.
	StorageContiguous Storage = "contiguous"
	// StorageSparse keeps a map plus sorted keys.
	StorageSparse Storage = "sparse"
)

// ParseStorage validates a configured storage name.
func ParseStorage(s string) (Storage, error) {
	switch Storage(s) {
	case StorageContiguous, StorageSparse:
		return Storage(s), nil
	case "":
		return StorageContiguous, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStorage, s)
	}
}

// newWindow builds a window from tiles computed for positions
// first..first+len(tiles)-1. Nil entries are background and are not stored.
func newWindow(kind Storage, first int, tiles []*core.Tile) Window {
	lo, hi := 0, len(tiles)-1
	for lo <= hi && tiles[lo] == nil {
		lo++
	}
	for hi >= lo && tiles[hi] == nil {
		hi--
	}
	trimmed := tiles[lo : hi+1]

	switch kind {
	case StorageSparse:
		return newSparseWindow(first+lo, trimmed)
	default:
		return newContiguousWindow(first+lo, trimmed)
	}
}
