package selfplay

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

type Stats struct {
	Count     int
	ToppedOut int
	Cutoff    int

	Pieces   int
	Lines    int
	Tetrises int
	MaxLines int

	MeanLines   float64
	StdDevLines float64
	MeanPieces  float64

	Games []Result `json:"-"`
}

// Summarize aggregates per-game results.
func Summarize(games []Result) Stats {
	st := Stats{Count: len(games), Games: games}
	if len(games) == 0 {
		return st
	}
	lines := lo.Map(games, func(r Result, _ int) float64 { return float64(r.Lines) })
	pieces := lo.Map(games, func(r Result, _ int) float64 { return float64(r.Pieces) })
	for _, r := range games {
		if r.ToppedOut {
			st.ToppedOut++
		} else {
			st.Cutoff++
		}
		st.Pieces += r.Pieces
		st.Lines += r.Lines
		st.Tetrises += r.Tetrises
	}
	st.MaxLines = lo.Max(lo.Map(games, func(r Result, _ int) int { return r.Lines }))
	st.MeanLines, st.StdDevLines = stat.MeanStdDev(lines, nil)
	if len(games) < 2 {
		st.StdDevLines = 0
	}
	st.MeanPieces = stat.Mean(pieces, nil)
	return st
}
