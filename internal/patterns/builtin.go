package patterns

import (
	"fmt"
	"sort"

	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
)

// cell offsets for the built-in shapes, as (x, y)
var (
	lwssCells = [][2]int{{0, 0}, {0, 2}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {4, 2}, {4, 1}, {3, 0}}

	// moving +x+y
	gliderCells = [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	// two gliders moving -x+y, ten rows apart
	glidersCells = [][2]int{
		{9, 0}, {8, 1}, {10, 2}, {9, 2}, {8, 2},
		{9, 10}, {8, 11}, {10, 12}, {9, 12}, {8, 12},
	}

	blinkerCells = [][2]int{{1, 2}, {2, 2}, {3, 2}}
	blockCells   = [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
)

var builtins = map[string][][2]int{
	"empty":   nil,
	"lwss":    lwssCells,
	"glider":  gliderCells,
	"gliders": glidersCells,
	"blinker": blinkerCells,
	"block":   blockCells,
}

// Names lists the built-in pattern names.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin places a named shape in the top-left corner of a tile of the given size.
func Builtin(name string, size int) (*core.Tile, error) {
	cells, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrTooSmall, size)
	}
	t := core.New(size)
	if err := Stamp(t, cells, 0, 0); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", name, err)
	}
	return t, nil
}

// MustBuiltin is Builtin for sizes known to fit; it panics otherwise.
func MustBuiltin(name string, size int) *core.Tile {
	t, err := Builtin(name, size)
	if err != nil {
		panic(err)
	}
	return t
}

// Stamp sets the given cells on t, offset by (x, y).
func Stamp(t *core.Tile, cells [][2]int, x, y int) error {
	for _, c := range cells {
		cx, cy := x+c[0], y+c[1]
		if cx < 0 || cy < 0 || cx >= t.Size() || cy >= t.Size() {
			return fmt.Errorf("%w: cell (%d,%d) outside %dx%d tile", ErrTooSmall, cx, cy, t.Size(), t.Size())
		}
		t.Set(cx, cy, true)
	}
	return nil
}
