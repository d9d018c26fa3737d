package output

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/mitchelldurbincs/LifeStruggle/internal/game"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/board"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
	"github.com/mitchelldurbincs/LifeStruggle/internal/testutil"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path, format string
		want         Format
	}{
		{"board.png", "", FormatPNG},
		{"board.BMP", "", FormatBMP},
		{"board.tif", "", FormatTIFF},
		{"board.tiff", "", FormatTIFF},
		{"board.png", "bmp", FormatBMP},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path, tt.format)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFor("board.gif", "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = FormatFor("board", "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func testImage() image.Image {
	img := image.NewPaletted(image.Rect(0, 0, 3, 2), color.Palette{color.White, color.Black})
	img.SetColorIndex(1, 0, 1)
	img.SetColorIndex(2, 1, 1)
	return img
}

func TestScale(t *testing.T) {
	img := testImage()
	assert.Same(t, img, Scale(img, 1))

	scaled := Scale(img, 3)
	assert.Equal(t, image.Rect(0, 0, 9, 6), scaled.Bounds())

	r, g, b, _ := scaled.At(4, 1).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})
	r, g, b, _ = scaled.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestEncodeRoundTrip(t *testing.T) {
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		FormatPNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FormatBMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		FormatTIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}

	src := testImage()
	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, format))

			img, err := decode(&buf)
			require.NoError(t, err)
			require.Equal(t, src.Bounds(), img.Bounds())

			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					wr, _, _, _ := src.At(x, y).RGBA()
					gr, _, _, _ := img.At(x, y).RGBA()
					assert.Equal(t, wr, gr, "pixel %d,%d", x, y)
				}
			}
		})
	}

	assert.ErrorIs(t, Encode(&bytes.Buffer{}, src, "gif"), ErrUnknownFormat)
}

func TestWriteImage(t *testing.T) {
	b, err := board.New(context.Background(), testutil.LWSS(8), core.New(8), board.WithLogger(testutil.NopLogger()))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		b, err = b.NextGeneration(context.Background())
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "board.png")
	require.NoError(t, WriteImage(path, "", b.Image(), 2))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, b.Image().Bounds().Dx()*2, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	assert.ErrorIs(t, WriteImage(filepath.Join(t.TempDir(), "x.gif"), "", b.Image(), 1), ErrUnknownFormat)
}

func TestResultWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "matches.csv")

	r := game.Result{
		ID:          "m1",
		Score:       board.Score{A: 6, B: -6},
		Generations: 100,
		CycleA:      16,
		CycleB:      1,
		Duration:    1500 * time.Millisecond,
	}

	w, err := NewResultWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(NewResultRow(r, "lwss", "empty", 8)))
	require.NoError(t, w.Write(NewResultRow(game.Result{ID: "m2", Identical: true}, "empty", "empty", 8)))
	require.NoError(t, w.Close())

	// Reopening appends without repeating the header
	w, err = NewResultWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(NewResultRow(r, "lwss", "glider", 8)))
	require.NoError(t, w.Close())

	rows, err := ReadResults(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, ResultRow{
		MatchID: "m1", PatternA: "lwss", PatternB: "empty", TileSize: 8,
		Generations: 100, ScoreA: 6, ScoreB: -6, CycleA: 16, CycleB: 1, DurationMS: 1500,
	}, rows[0])
	assert.True(t, rows[1].Identical)
	assert.Equal(t, "glider", rows[2].PatternB)
}

func TestResultWriterDisabled(t *testing.T) {
	w, err := NewResultWriter("")
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.NoError(t, w.Write(ResultRow{}))
	assert.NoError(t, w.Close())
}
