package ai

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/nelhage/tetrician/bitboard"
	"github.com/nelhage/tetrician/tetris"
)

type Feature int

const (
	AggHeight Feature = iota
	MaxHeight
	CompleteLines
	Holes
	Caves
	Bumpiness
	Stacking
	MaxFeature
)

func (f Feature) String() string {
	switch f {
	case AggHeight:
		return "AggHeight"
	case MaxHeight:
		return "MaxHeight"
	case CompleteLines:
		return "CompleteLines"
	case Holes:
		return "Holes"
	case Caves:
		return "Caves"
	case Bumpiness:
		return "Bumpiness"
	case Stacking:
		return "Stacking"
	}
	return fmt.Sprintf("Feature(%d)", int(f))
}

// Weights holds one coefficient per Feature.
type Weights [MaxFeature]float64

var DefaultWeights = Weights{
	AggHeight:     -0.510066,
	CompleteLines: 0.760666,
	Holes:         -0.35663,
	Bumpiness:     -0.184483,
	Stacking:      -0.5,
}

// RandomWeights draws every coefficient uniformly from [-1, 1).
func RandomWeights(r *rand.Rand) Weights {
	var w Weights
	for i := range w {
		w[i] = 2*r.Float64() - 1
	}
	return w
}

// Features is the structural summary of a well, as it will look once
// its full rows are cleared.
type Features struct {
	Heights [tetris.MaxWidth]int
	Values  [MaxFeature]int

	// StackOut is set if blocks remain in the top two rows after
	// clearing.
	StackOut bool
}

// Cleared returns a copy of the well with every full row removed.
func Cleared(w *tetris.Well) *tetris.Well {
	c := w.Clone()
	for y := c.Height() - 1; y >= 0; y-- {
		if c.TestLine(y) {
			c.RemoveLine(y)
		}
	}
	return c
}

// Crunch computes every feature of a well.
func Crunch(w *tetris.Well) Features {
	return crunch(w, true)
}

func crunch(w *tetris.Well, caves bool) Features {
	var f Features
	var holes, stacks [tetris.MaxWidth]int
	width := w.Width()
	mask := w.LineMask()
	height := 0
	for _, line := range w.Lines() {
		if line == mask {
			f.Values[CompleteLines]++
			continue
		}
		height++
		if line == 0 {
			continue
		}
		if height > w.Height()-2 {
			f.StackOut = true
		}
		for bits := line; bits != 0; bits &= bits - 1 {
			col := bitboard.TrailingZeros(bits)
			holes[col] += height - f.Heights[col] - 1
			f.Heights[col] = height
			if holes[col] != 0 {
				stacks[col]++
			}
		}
	}

	heights := f.Heights[:width]
	f.Values[AggHeight] = lo.Sum(heights)
	f.Values[MaxHeight] = lo.Max(heights)
	f.Values[Holes] = lo.Sum(holes[:width])
	f.Values[Stacking] = lo.Sum(stacks[:width])
	for i := 1; i < width; i++ {
		d := heights[i] - heights[i-1]
		if d < 0 {
			d = -d
		}
		f.Values[Bumpiness] += d
	}
	if caves {
		d := Cleared(w).CountHoles() - f.Values[Holes]
		if d < 0 {
			d = -d
		}
		f.Values[Caves] = d
	}
	return f
}

// Score combines features with the weights. A stacked-out well scores
// negative infinity.
func (ws *Weights) Score(f *Features) float64 {
	if f.StackOut {
		return math.Inf(-1)
	}
	var score float64
	for i, v := range f.Values {
		score += ws[i] * float64(v)
	}
	return score
}

// Eval scores a well; higher is better.
func (ws *Weights) Eval(w *tetris.Well) float64 {
	f := crunch(w, ws[Caves] != 0)
	return ws.Score(&f)
}

func ExplainScore(ws *Weights, out io.Writer, w *tetris.Well) {
	tw := tabwriter.NewWriter(out, 4, 8, 1, ' ', 0)
	f := Crunch(w)
	fmt.Fprintf(tw, "feature\tvalue\tweight\tscore\n")
	for i := Feature(0); i < MaxFeature; i++ {
		fmt.Fprintf(tw, "%s\t%d\t%+f\t%+f\n",
			i, f.Values[i], ws[i], ws[i]*float64(f.Values[i]))
	}
	if f.StackOut {
		fmt.Fprintf(tw, "stack-out\t\t\t-inf\n")
	}
	fmt.Fprintf(tw, "total\t\t\t%+f\n", ws.Score(&f))
	tw.Flush()
}
