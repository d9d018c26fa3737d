package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
)

// File is the YAML layout of a pattern file:
//
//	name: two gliders
//	size: 40        # optional, pads rows to a larger tile
//	rows:
//	  - ".X."
//	  - "..X"
//	  - "XXX"
type File struct {
	Name string   `yaml:"name"`
	Size int      `yaml:"size"`
	Rows []string `yaml:"rows"`
}

// Tile converts the file into a tile. Rows may be narrower than the tile;
// missing cells are dead.
func (f File) Tile() (*core.Tile, error) {
	size := f.Size
	if size == 0 {
		size = len(f.Rows)
		for _, row := range f.Rows {
			if len(row) > size {
				size = len(row)
			}
		}
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: pattern %q has no rows", core.ErrMalformedTile, f.Name)
	}
	if len(f.Rows) > size {
		return nil, fmt.Errorf("%w: %d rows do not fit size %d", ErrTooSmall, len(f.Rows), size)
	}

	rows := make([]string, size)
	for y := range rows {
		var row string
		if y < len(f.Rows) {
			row = f.Rows[y]
		}
		if len(row) > size {
			return nil, fmt.Errorf("%w: row %d is wider than size %d", ErrTooSmall, y, size)
		}
		rows[y] = row + strings.Repeat(".", size-len(row))
	}
	return core.ParseRows(rows)
}

// Load reads a YAML pattern file.
func Load(path string) (*core.Tile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing pattern file %s: %w", path, err)
	}
	t, err := f.Tile()
	if err != nil {
		return nil, fmt.Errorf("pattern file %s: %w", path, err)
	}
	return t, nil
}

// Save writes a tile as a YAML pattern file.
func Save(path, name string, t *core.Tile) error {
	f := File{Name: name, Size: t.Size(), Rows: make([]string, t.Size())}
	for y := range f.Rows {
		f.Rows[y] = t.Line(y)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding pattern: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Resolve turns a configured pattern reference into a tile: a built-in name,
// a YAML file path, or "random:<seed>" with the given density.
func Resolve(ref string, size int, density float64) (*core.Tile, error) {
	switch ext := strings.ToLower(filepath.Ext(ref)); {
	case ext == ".yaml" || ext == ".yml":
		t, err := Load(ref)
		if err != nil {
			return nil, err
		}
		if t.Size() != size {
			return nil, fmt.Errorf("%w: %s is %dx%d, want %dx%d", ErrSizeMismatch, ref, t.Size(), t.Size(), size, size)
		}
		return t, nil
	case strings.HasPrefix(ref, "random:"):
		var seed int64
		if _, err := fmt.Sscanf(strings.TrimPrefix(ref, "random:"), "%d", &seed); err != nil {
			return nil, fmt.Errorf("%w: bad seed in %q", ErrUnknownPattern, ref)
		}
		return Random(size, density, seed), nil
	default:
		return Builtin(ref, size)
	}
}
