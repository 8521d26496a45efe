package ai

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/tetrician/tetris"
	"github.com/nelhage/tetrician/tetristest"
)

func TestCrunch(t *testing.T) {
	w := tetris.WellFromData(10, []tetris.Line{
		0b0000110000,
		0b0111111001,
		0b0110111111,
		0b1111111111,
		0b1110111111,
		0b1111111111,
	})
	f := Crunch(w)
	assert.Equal(t, 28, f.Values[AggHeight])
	assert.Equal(t, 4, f.Values[MaxHeight])
	assert.Equal(t, 2, f.Values[CompleteLines])
	assert.Equal(t, 2, f.Values[Holes])
	assert.Equal(t, 0, f.Values[Caves])
	assert.Equal(t, 6, f.Values[Bumpiness])
	assert.Equal(t, 1, f.Values[Stacking])
	assert.False(t, f.StackOut)
	assert.Equal(t, []int{1, 3, 3, 3, 4, 4, 3, 2, 2, 3}, f.Heights[:10])

	want := -0.510066*28 + 0.760666*2 - 0.35663*2 - 0.184483*6 - 0.5*1
	assert.InDelta(t, want, DefaultWeights.Eval(w), 1e-9)
}

func TestCaves(t *testing.T) {
	w := tetristest.Well(`
|          |
|          |
|          |
|####      |
|#  #      |
|#         |
`)
	f := Crunch(w)
	assert.Equal(t, 5, f.Values[Holes])
	assert.Equal(t, 0, Cleared(w).CountHoles(), "open to the right")
	assert.Equal(t, 5, f.Values[Caves])

	ws := Weights{Caves: -1}
	assert.Equal(t, -5.0, ws.Eval(w))
}

func TestEvalStackOut(t *testing.T) {
	w := tetris.NewWell(10, 6)
	w.SetLine(4, 1)
	assert.True(t, math.IsInf(DefaultWeights.Eval(w), -1))

	cleared := tetris.NewWell(10, 6)
	cleared.SetLine(5, cleared.LineMask())
	cleared.SetLine(0, 1)
	f := Crunch(cleared)
	assert.False(t, f.StackOut, "full rows are cleared before the check")
	assert.False(t, math.IsInf(DefaultWeights.Eval(cleared), 0))

	buried := tetris.NewWell(10, 6)
	for y := 0; y < 4; y++ {
		buried.SetLine(y, 0b0111111111)
	}
	assert.False(t, Crunch(buried).StackOut)
	buried.SetLine(4, 0b1000000000)
	assert.True(t, Crunch(buried).StackOut)
}

func TestHoleDefinitionsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		s := tetris.NewState(10, 20)
		for i := 0; i < 60; i++ {
			piece := tetris.PieceFromUint8(uint8(r.Intn(256)))
			p := tetris.Player{
				Piece: piece,
				Rot:   tetris.RotFromUint8(uint8(r.Intn(4))),
				Pt:    tetris.Point{X: r.Intn(13) - 3, Y: 20},
			}
			if s.Well().Test(p.Sprite(), p.Pt) {
				continue
			}
			s.SetPlayer(p)
			s.HardDrop()
			s.ClearLines(nil)
			if s.IsGameOver() {
				break
			}
			f := Crunch(s.Well())
			if f.StackOut {
				continue
			}
			flood := Cleared(s.Well()).CountHoles()
			if f.Values[Holes] == 0 {
				require.Equal(t, 0, flood, "game %d piece %d", game, i)
			}
			require.LessOrEqual(t, flood, f.Values[Holes])
		}
	}
}

func TestExplainScore(t *testing.T) {
	var buf bytes.Buffer
	w := tetristest.Well(`
|          |
|          |
|          |
|#  #######|
`)
	ExplainScore(&DefaultWeights, &buf, w)
	out := buf.String()
	assert.Contains(t, out, "AggHeight")
	assert.Contains(t, out, "total")
	assert.NotContains(t, out, "stack-out")
}

func TestRandomWeights(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		w := RandomWeights(r)
		for _, v := range w {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.Less(t, v, 1.0)
		}
	}
}
