// Package corpus writes evaluated placements to parquet files for
// offline weight fitting.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/nelhage/tetrician/ai"
	"github.com/nelhage/tetrician/selfplay"
	"github.com/nelhage/tetrician/tetris"
)

const schemaVersion = "placement_v1"

// Row is one placement. Lines holds the well before the piece locked,
// bottom row first, one bitmask per row with bit x = column x.
// Features are measured on the well after the piece locked.
type Row struct {
	Game   int64 `parquet:"game"`
	Ply    int32 `parquet:"ply"`
	Width  int32 `parquet:"width"`
	Height int32 `parquet:"height"`

	Lines []int32 `parquet:"lines"`

	Piece string `parquet:"piece,dict"`
	Rot   int32  `parquet:"rot"`
	X     int32  `parquet:"x"`
	Y     int32  `parquet:"y"`

	Features []int32 `parquet:"features"`
	Score    float64 `parquet:"score"`
}

// NewRow describes `p` coming to rest in `w`.
func NewRow(game int64, ply int, w *tetris.Well, p tetris.Player, score float64) Row {
	lines := make([]int32, w.Height())
	for i, l := range w.Lines() {
		lines[i] = int32(l)
	}
	after := *w
	after.Etch(p.Sprite(), p.Pt)
	f := ai.Crunch(&after)
	feats := make([]int32, ai.MaxFeature)
	for i, v := range f.Values {
		feats[i] = int32(v)
	}
	return Row{
		Game:     game,
		Ply:      int32(ply),
		Width:    int32(w.Width()),
		Height:   int32(w.Height()),
		Lines:    lines,
		Piece:    p.Piece.String(),
		Rot:      int32(p.Rot),
		X:        int32(p.Pt.X),
		Y:        int32(p.Pt.Y),
		Features: feats,
		Score:    score,
	}
}

// FromGame converts a recorded selfplay game into rows.
func FromGame(r *selfplay.Result) []Row {
	rows := make([]Row, 0, len(r.Moves))
	for i := range r.Moves {
		m := &r.Moves[i]
		rows = append(rows, NewRow(r.Seed, i, &m.Well, m.Player, m.Score))
	}
	return rows
}

// Well rebuilds the well a row was recorded from.
func (r *Row) Well() (*tetris.Well, error) {
	if int(r.Height) != len(r.Lines) {
		return nil, fmt.Errorf("row has height %d but %d lines", r.Height, len(r.Lines))
	}
	if r.Width < tetris.MinWidth || r.Width > tetris.MaxWidth ||
		r.Height < tetris.MinHeight || r.Height > tetris.MaxHeight {
		return nil, fmt.Errorf("bad dimensions %dx%d", r.Width, r.Height)
	}
	w := tetris.NewWell(int(r.Width), int(r.Height))
	for y, l := range r.Lines {
		w.SetLine(y, tetris.Line(l))
	}
	return w, nil
}

func Write(outPath string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schemaVersion),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

func Read(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, err
	}
	if v, ok := pf.Lookup("schema"); ok && v != schemaVersion {
		return nil, fmt.Errorf("%s: unknown schema %q", path, v)
	}

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	rows := make([]Row, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return rows[:n], nil
}
