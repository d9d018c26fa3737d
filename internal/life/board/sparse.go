package board

import "github.com/mitchelldurbincs/LifeStruggle/internal/life/core"

type sparseWindow struct {
	tiles map[int]*core.Tile
	keys  []int // ascending
}

func newSparseWindow(first int, tiles []*core.Tile) *sparseWindow {
	w := &sparseWindow{tiles: make(map[int]*core.Tile)}
	for i, t := range tiles {
		if t == nil {
			continue
		}
		w.tiles[first+i] = t
		w.keys = append(w.keys, first+i)
	}
	return w
}

func (w *sparseWindow) Bounds() (int, int, bool) {
	if len(w.keys) == 0 {
		return 0, 0, false
	}
	return w.keys[0], w.keys[len(w.keys)-1], true
}

func (w *sparseWindow) Tile(x int) (*core.Tile, bool) {
	t, ok := w.tiles[x]
	return t, ok
}

func (w *sparseWindow) Positions() []int {
	out := make([]int, len(w.keys))
	copy(out, w.keys)
	return out
}

func (w *sparseWindow) Len() int         { return len(w.keys) }
func (w *sparseWindow) Storage() Storage { return StorageSparse }
