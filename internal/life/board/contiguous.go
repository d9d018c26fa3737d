package board

import "github.com/mitchelldurbincs/LifeStruggle/internal/life/core"

type contiguousWindow struct {
	offset int
	tiles  []*core.Tile // tiles[i] is position offset+i; nil means background
	count  int
}

func newContiguousWindow(offset int, tiles []*core.Tile) *contiguousWindow {
	w := &contiguousWindow{offset: offset, tiles: tiles}
	for _, t := range tiles {
		if t != nil {
			w.count++
		}
	}
	return w
}

func (w *contiguousWindow) Bounds() (int, int, bool) {
	if len(w.tiles) == 0 {
		return 0, 0, false
	}
	return w.offset, w.offset + len(w.tiles) - 1, true
}

func (w *contiguousWindow) Tile(x int) (*core.Tile, bool) {
	i := x - w.offset
	if i < 0 || i >= len(w.tiles) || w.tiles[i] == nil {
		return nil, false
	}
	return w.tiles[i], true
}

func (w *contiguousWindow) Positions() []int {
	out := make([]int, 0, w.count)
	for i, t := range w.tiles {
		if t != nil {
			out = append(out, w.offset+i)
		}
	}
	return out
}

func (w *contiguousWindow) Len() int         { return w.count }
func (w *contiguousWindow) Storage() Storage { return StorageContiguous }
