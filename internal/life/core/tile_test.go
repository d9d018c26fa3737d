package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Tile {
	t.Helper()
	tile, err := ParseTile(text)
	require.NoError(t, err)
	return tile
}

func TestNew(t *testing.T) {
	tile := New(6)
	assert.Equal(t, 6, tile.Size())
	assert.Equal(t, 0, tile.Population())
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			assert.False(t, tile.Get(x, y), "cell (%d,%d) should start dead", x, y)
		}
	}

	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(-3) })
}

func TestTile_GetSet(t *testing.T) {
	tile := New(4)
	tile.Set(1, 2, true)
	tile.Set(3, 3, true)

	assert.True(t, tile.Get(1, 2))
	assert.True(t, tile.Get(3, 3))
	assert.False(t, tile.Get(2, 1))
	assert.Equal(t, 2, tile.Population())

	tile.Set(1, 2, false)
	assert.False(t, tile.Get(1, 2))
	assert.Equal(t, 1, tile.Population())
}

func TestTile_OutOfRangePanics(t *testing.T) {
	tile := New(4)
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at size", 4, 0},
		{"y at size", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { tile.Get(tt.x, tt.y) })
			assert.Panics(t, func() { tile.Set(tt.x, tt.y, true) })
		})
	}
}

func TestTile_EqualAndClone(t *testing.T) {
	a := mustParse(t, `
		X..
		.X.
		...`)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.Set(2, 2, true)
	assert.False(t, a.Equal(b), "clone must not share cells with the original")
	assert.False(t, a.Get(2, 2))

	assert.False(t, a.Equal(New(4)), "different sizes are never equal")
	assert.False(t, a.Equal(nil))
}

func TestTile_Mirror(t *testing.T) {
	tile := mustParse(t, `
		XX..
		X...
		....
		...X`)
	expected := mustParse(t, `
		..XX
		...X
		....
		X...`)

	assert.True(t, tile.Mirror().Equal(expected), "got\n%s", tile.Mirror())
	assert.True(t, tile.Mirror().Mirror().Equal(tile), "mirror must be an involution")
}

func TestTile_NextGeneration_Blinker(t *testing.T) {
	horizontal := mustParse(t, `
		.....
		.....
		.XXX.
		.....
		.....`)
	vertical := mustParse(t, `
		.....
		..X..
		..X..
		..X..
		.....`)

	next := horizontal.NextGeneration(horizontal, horizontal)
	assert.True(t, next.Equal(vertical), "got\n%s", next)

	again := next.NextGeneration(next, next)
	assert.True(t, again.Equal(horizontal), "got\n%s", again)
}

func TestTile_NextGeneration_BlockIsStill(t *testing.T) {
	block := mustParse(t, `
		....
		.XX.
		.XX.
		....`)

	next := block.NextGeneration(block, block)
	assert.True(t, next.Equal(block))
}

func TestTile_NextGeneration_VerticalWrap(t *testing.T) {
	tile := mustParse(t, `
		..XXX.
		......
		......
		......
		......
		......`)
	expected := mustParse(t, `
		...X..
		...X..
		......
		......
		......
		...X..`)

	empty := New(6)
	next := tile.NextGeneration(empty, empty)
	assert.True(t, next.Equal(expected), "got\n%s", next)
}

func TestTile_NextGeneration_NeighbourTiles(t *testing.T) {
	empty := New(6)

	// Three live cells in the last column of the left neighbour give birth to
	// exactly one cell in our first column.
	left := New(6)
	left.Set(5, 1, true)
	left.Set(5, 2, true)
	left.Set(5, 3, true)

	next := empty.NextGeneration(left, empty)
	assert.Equal(t, 1, next.Population())
	assert.True(t, next.Get(0, 2))

	right := left.Mirror()
	next = empty.NextGeneration(empty, right)
	assert.Equal(t, 1, next.Population())
	assert.True(t, next.Get(5, 2))

	// Neighbours are only ever read.
	assert.Equal(t, 3, left.Population())
	assert.Equal(t, 0, empty.Population())
}

func TestTile_NextGeneration_Deterministic(t *testing.T) {
	self := mustParse(t, `
		.X..X.
		X.X...
		..XX..
		.....X
		X...X.
		.X....`)
	prev := self.Mirror()
	next := self.NextGeneration(self, self)

	first := self.NextGeneration(prev, next)
	for i := 0; i < 5; i++ {
		assert.True(t, self.NextGeneration(prev, next).Equal(first))
	}
}

func TestTile_NextGeneration_SizeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(4).NextGeneration(New(4), New(5))
	})
}

func TestFromSource(t *testing.T) {
	src := mustParse(t, `
		X.
		.X`)
	copied := FromSource(src)
	assert.True(t, copied.Equal(src))
	assert.NotSame(t, src, copied)
}

func TestParseTile(t *testing.T) {
	tile, err := ParseTile("O*\n.X\n")
	require.NoError(t, err)
	assert.Equal(t, 2, tile.Size())
	assert.Equal(t, 3, tile.Population())
	assert.Equal(t, "XX\n.X\n", tile.String())

	tests := []struct {
		name string
		text string
	}{
		{"empty", "\n\n"},
		{"not square", "X..\n..."},
		{"ragged", "X.\n...\n..."},
		{"bad character", "X?\n.."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTile(tt.text)
			assert.ErrorIs(t, err, ErrMalformedTile)
		})
	}
}

func BenchmarkNextGeneration(b *testing.B) {
	for _, size := range []int{40, 200} {
		tile := New(size)
		for y := 0; y+4 < size; y += 10 {
			for x := 0; x+4 < size; x += 10 {
				for _, c := range [][2]int{{0, 0}, {0, 2}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {4, 2}, {4, 1}, {3, 0}} {
					tile.Set(x+c[0], y+c[1], true)
				}
			}
		}
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			t := tile
			for i := 0; i < b.N; i++ {
				t = t.NextGeneration(t, t)
			}
			b.ReportMetric(float64(size*size), "cells")
		})
	}
}

