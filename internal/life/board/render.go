package board

import (
	"bufio"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/LifeStruggle/internal/common"
)

// renderSpan is the tracked window, or the two tiles around x=0 when nothing
// is disturbed.
func (b *Board) renderSpan() (int, int) {
	first, last, ok := b.window.Bounds()
	if !ok {
		return -1, 0
	}
	return first, last
}

// WriteText prints a header row of tile positions followed by the cells of
// every rendered tile side by side, X for live and . for dead.
func (b *Board) WriteText(w io.Writer) error {
	first, last := b.renderSpan()
	size := b.TileSize()
	bw := bufio.NewWriter(w)

	for x := first; x <= last; x++ {
		bw.WriteString(headerCell(x, size))
	}
	bw.WriteByte('\n')
	for y := 0; y < size; y++ {
		for x := first; x <= last; x++ {
			bw.WriteString(b.TileAt(x).Line(y))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (b *Board) String() string {
	var sb strings.Builder
	_ = b.WriteText(&sb)
	return sb.String()
}

// headerCell centres the position label in a size-wide cell framed by bars.
func headerCell(x, size int) string {
	label := strconv.Itoa(x)
	if size < 3 {
		return pad(label, size)
	}
	return "|" + pad(label, size-2) + "|"
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

// Image renders the rendered tiles left to right, one pixel per cell.
func (b *Board) Image() *image.Paletted {
	first, last := b.renderSpan()
	size := b.TileSize()
	img := image.NewPaletted(image.Rect(0, 0, size*(last-first+1), size), common.Palette)

	for x := first; x <= last; x++ {
		t := b.TileAt(x)
		left := (x - first) * size
		for cy := 0; cy < size; cy++ {
			for cx := 0; cx < size; cx++ {
				if t.Get(cx, cy) {
					img.SetColorIndex(left+cx, cy, 1)
				}
			}
		}
	}
	return img
}
