package board

import "fmt"

// Score is territory gained minus territory lost, per player.
type Score struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Swap exchanges the two players' scores.
func (s Score) Swap() Score { return Score{A: s.B, B: s.A} }

func (s Score) String() string { return fmt.Sprintf("%d to %d", s.A, s.B) }

// Score counts every whole tile left of the window as A's and every whole tile
// right of it as B's, relative to the x=0 border, then credits each window
// position that currently matches one side's background.
func (b *Board) Score() Score {
	first, last := b.span()
	s := Score{A: first, B: -last - 1}

	a := b.bg.A.DefaultAt(b.generation)
	bb := b.bg.B.DefaultAt(b.generation)
	for x := first; x <= last; x++ {
		t := b.TileAt(x)
		switch {
		case t.Equal(a):
			s.A++
		case t.Equal(bb):
			s.B++
		}
	}
	return s
}
