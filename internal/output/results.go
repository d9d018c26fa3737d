package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/mitchelldurbincs/LifeStruggle/internal/game"
)

// ResultRow is one match in a results CSV.
type ResultRow struct {
	MatchID     string `csv:"match_id"`
	PatternA    string `csv:"pattern_a"`
	PatternB    string `csv:"pattern_b"`
	TileSize    int    `csv:"tile_size"`
	Generations int    `csv:"generations"`
	ScoreA      int    `csv:"score_a"`
	ScoreB      int    `csv:"score_b"`
	Converged   bool   `csv:"converged"`
	Identical   bool   `csv:"identical"`
	CycleA      int    `csv:"cycle_a"`
	CycleB      int    `csv:"cycle_b"`
	DurationMS  int64  `csv:"duration_ms"`
}

// NewResultRow flattens r for CSV output.
func NewResultRow(r game.Result, patternA, patternB string, tileSize int) ResultRow {
	return ResultRow{
		MatchID:     r.ID,
		PatternA:    patternA,
		PatternB:    patternB,
		TileSize:    tileSize,
		Generations: r.Generations,
		ScoreA:      r.Score.A,
		ScoreB:      r.Score.B,
		Converged:   r.Converged,
		Identical:   r.Identical,
		CycleA:      r.CycleA,
		CycleB:      r.CycleB,
		DurationMS:  r.Duration.Milliseconds(),
	}
}

// ResultWriter appends match results to a CSV file, writing the header only
// when the file starts out empty.
type ResultWriter struct {
	file          *os.File
	headerWritten bool
}

// NewResultWriter opens path for appending. Returns nil if path is empty
// (output disabled); all methods accept a nil receiver.
func NewResultWriter(path string) (*ResultWriter, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return &ResultWriter{file: f, headerWritten: info.Size() > 0}, nil
}

// Write appends one row.
func (rw *ResultWriter) Write(row ResultRow) error {
	if rw == nil {
		return nil
	}

	records := []ResultRow{row}

	if !rw.headerWritten {
		if err := gocsv.Marshal(records, rw.file); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		rw.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, rw.file); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}

	return nil
}

func (rw *ResultWriter) Close() error {
	if rw == nil {
		return nil
	}
	return rw.file.Close()
}

// ReadResults loads every row of a results CSV.
func ReadResults(path string) ([]ResultRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []ResultRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}
