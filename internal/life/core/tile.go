package core

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Source is anything that can describe a square pattern of cells.
// Callers hand patterns to the engine through this interface.
type Source interface {
	Size() int
	Get(x, y int) bool
}

// Tile is a square bitmap of Game of Life cells.
// A tile is treated as immutable once it has been handed to a board or cycle;
// every transition produces a new Tile.
type Tile struct {
	size  int
	cells *bitset.BitSet // index = x + y*size
}

// New returns an all-dead tile of the given size.
func New(size int) *Tile {
	if size <= 0 {
		panic(fmt.Sprintf("core: invalid tile size %d", size))
	}
	return &Tile{size: size, cells: bitset.New(uint(size * size))}
}

// FromSource copies any Source into a new Tile.
func FromSource(src Source) *Tile {
	size := src.Size()
	t := New(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if src.Get(x, y) {
				t.Set(x, y, true)
			}
		}
	}
	return t
}

func (t *Tile) Size() int { return t.size }

// Get reports whether the cell at (x,y) is alive. Out of range access panics.
func (t *Tile) Get(x, y int) bool {
	return t.cells.Test(t.index(x, y))
}

// Set changes the cell at (x,y). Out of range access panics.
func (t *Tile) Set(x, y int, alive bool) {
	t.cells.SetTo(t.index(x, y), alive)
}

func (t *Tile) index(x, y int) uint {
	if x < 0 || x >= t.size || y < 0 || y >= t.size {
		panic(fmt.Sprintf("core: cell (%d,%d) out of range for tile size %d", x, y, t.size))
	}
	return uint(x + y*t.size)
}

// Equal reports whether both tiles hold exactly the same cells.
func (t *Tile) Equal(other *Tile) bool {
	if t == other {
		return true
	}
	if other == nil || t.size != other.size {
		return false
	}
	return t.cells.Equal(other.cells)
}

func (t *Tile) Clone() *Tile {
	return &Tile{size: t.size, cells: t.cells.Clone()}
}

// Population returns the number of live cells.
func (t *Tile) Population() int {
	return int(t.cells.Count())
}

// Mirror returns a copy reflected over the vertical axis (x -> size-1-x).
func (t *Tile) Mirror() *Tile {
	m := New(t.size)
	for y := 0; y < t.size; y++ {
		for x := 0; x < t.size; x++ {
			if t.Get(t.size-1-x, y) {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// NextGeneration evolves the tile one step. Tiles sit in a horizontal strip,
// so previous supplies the cells left of x=0 and next the cells right of
// x=size-1; y wraps inside the tile.
//
// The 3x3 window is counted including the cell itself: a live cell survives
// on a count of 3 or 4 and a dead cell is born on exactly 3.
func (t *Tile) NextGeneration(previous, next *Tile) *Tile {
	n := t.size
	if previous.size != n || next.size != n {
		panic(fmt.Sprintf("core: neighbour tile sizes %d/%d do not match tile size %d",
			previous.size, next.size, n))
	}

	// cols[i] holds column x=i-1 of the strip, so cols[0] is the last column
	// of previous and cols[n+1] the first column of next.
	cols := make([][]bool, n+2)
	cols[0] = previous.column(n - 1)
	for x := 0; x < n; x++ {
		cols[x+1] = t.column(x)
	}
	cols[n+1] = next.column(0)

	out := New(n)
	for y := 0; y < n; y++ {
		up := (y + n - 1) % n
		down := (y + 1) % n
		for x := 0; x < n; x++ {
			count := 0
			for _, col := range cols[x : x+3] {
				if col[up] {
					count++
				}
				if col[y] {
					count++
				}
				if col[down] {
					count++
				}
			}
			if count == 3 || (count == 4 && cols[x+1][y]) {
				out.Set(x, y, true)
			}
		}
	}
	return out
}

func (t *Tile) column(x int) []bool {
	col := make([]bool, t.size)
	for y := range col {
		col[y] = t.Get(x, y)
	}
	return col
}

// Line renders row y as X (alive) and . (dead).
func (t *Tile) Line(y int) string {
	var sb strings.Builder
	sb.Grow(t.size)
	for x := 0; x < t.size; x++ {
		if t.Get(x, y) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func (t *Tile) String() string {
	var sb strings.Builder
	for y := 0; y < t.size; y++ {
		sb.WriteString(t.Line(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseTile reads the text form produced by String. Rows are trimmed and blank
// lines skipped; 'X', 'O' and '*' are live, '.' is dead.
func ParseTile(text string) (*Tile, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	return ParseRows(rows)
}

// ParseRows builds a tile from one string per row.
func ParseRows(rows []string) (*Tile, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedTile)
	}
	size := len(rows)
	t := New(size)
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedTile, y, len(row), size)
		}
		for x, c := range row {
			switch c {
			case 'X', 'O', '*':
				t.Set(x, y, true)
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedTile, c, x, y)
			}
		}
	}
	return t, nil
}
