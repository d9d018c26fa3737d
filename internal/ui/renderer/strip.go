package renderer

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/LifeStruggle/internal/common"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/board"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
)

var LabelColor = color.White

// Layout positions tiles on screen. Position Pan is centred horizontally.
type Layout struct {
	Scale    int // screen pixels per cell
	Gap      int // pixels between tiles
	Top      int // y of the tile row
	Width    int // screen width
	TileSize int
	Pan      int
}

// Pitch is the horizontal distance between two tile origins.
func (l Layout) Pitch() int { return l.TileSize*l.Scale + l.Gap }

// TileLeft returns the screen x of position x's left edge.
func (l Layout) TileLeft(x int) int {
	return l.Width/2 - l.TileSize*l.Scale/2 + (x-l.Pan)*l.Pitch()
}

// Visible returns the positions at least partly on screen.
func (l Layout) Visible() (first, last int) {
	pitch := l.Pitch()
	half := (l.Width/2 + pitch - 1) / pitch
	return l.Pan - half - 1, l.Pan + half + 1
}

// PositionAt returns the position under screen x, if any.
func (l Layout) PositionAt(sx int) (int, bool) {
	pitch := l.Pitch()
	origin := l.TileLeft(0)
	off := sx - origin
	x := floorDiv(off, pitch)
	if off-x*pitch >= l.TileSize*l.Scale {
		return 0, false // in the gap
	}
	return x, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Owner reports which side's background position x currently matches,
// common.Contested when it matches neither.
func Owner(b *board.Board, x int) int {
	t := b.TileAt(x)
	g := b.Generation()
	switch {
	case t.Equal(b.Background().A.DefaultAt(g)):
		return common.PlayerA
	case t.Equal(b.Background().B.DefaultAt(g)):
		return common.PlayerB
	default:
		return common.Contested
	}
}

// TilePixels fills buf with RGBA pixels for t, one pixel per cell.
func TilePixels(t *core.Tile, live, dead color.Color, buf []byte) []byte {
	n := t.Size()
	if cap(buf) < n*n*4 {
		buf = make([]byte, n*n*4)
	}
	buf = buf[:n*n*4]

	lr, lg, lb, la := rgba8(live)
	dr, dg, db, da := rgba8(dead)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := (y*n + x) * 4
			if t.Get(x, y) {
				buf[i], buf[i+1], buf[i+2], buf[i+3] = lr, lg, lb, la
			} else {
				buf[i], buf[i+1], buf[i+2], buf[i+3] = dr, dg, db, da
			}
		}
	}
	return buf
}

func rgba8(c color.Color) (uint8, uint8, uint8, uint8) {
	r, g, b, a := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}

type StripRenderer struct {
	defaultFont font.Face
	cells       []*ebiten.Image
	buf         []byte
}

// NewStripRenderer returns a renderer ready to use.
func NewStripRenderer(f font.Face) *StripRenderer {
	return &StripRenderer{defaultFont: f}
}

// Draw renders every visible position of b. Live cells are tinted with the
// colour of the side the tile matches; tracked tiles get a border.
func (sr *StripRenderer) Draw(screen *ebiten.Image, b *board.Board, l Layout) {
	if b == nil {
		return
	}
	l.TileSize = b.TileSize()
	first, last := l.Visible()
	side := float32(l.TileSize * l.Scale)

	for slot, x := 0, first; x <= last; slot, x = slot+1, x+1 {
		cell := sr.cell(slot, l.TileSize)
		sr.buf = TilePixels(b.TileAt(x), common.OwnerColor(Owner(b, x)), common.DeadColor, sr.buf)
		cell.WritePixels(sr.buf)

		left := float64(l.TileLeft(x))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(l.Scale), float64(l.Scale))
		op.GeoM.Translate(left, float64(l.Top))
		screen.DrawImage(cell, op)

		if _, tracked := b.Window().Tile(x); tracked {
			vector.StrokeRect(screen, float32(left)-1, float32(l.Top)-1, side+2, side+2, 2, common.BorderColor, false)
		}

		if sr.defaultFont != nil {
			label := strconv.Itoa(x)
			bounds := text.BoundString(sr.defaultFont, label)
			tx := int(left) + (int(side)-bounds.Dx())/2
			ty := l.Top + int(side) + bounds.Dy() + 4
			text.Draw(screen, label, sr.defaultFont, tx, ty, LabelColor)
		}
	}
}

// cell returns a reusable image for a screen slot, so each position drawn in
// one frame gets its own texture.
func (sr *StripRenderer) cell(slot, size int) *ebiten.Image {
	for len(sr.cells) <= slot {
		sr.cells = append(sr.cells, nil)
	}
	img := sr.cells[slot]
	if img == nil || img.Bounds().Dx() != size {
		if img != nil {
			img.Deallocate()
		}
		img = ebiten.NewImage(size, size)
		sr.cells[slot] = img
	}
	return img
}
