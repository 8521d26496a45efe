package tetris

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWellBounds(t *testing.T) {
	assert.Panics(t, func() { NewWell(3, 10) })
	assert.Panics(t, func() { NewWell(17, 10) })
	assert.Panics(t, func() { NewWell(10, 3) })
	assert.Panics(t, func() { NewWell(10, 24) })
	assert.NotPanics(t, func() { NewWell(4, 4) })
	assert.NotPanics(t, func() { NewWell(16, 23) })

	w := NewWell(10, 22)
	assert.Equal(t, Line(0x3ff), w.LineMask())
	assert.True(t, w.IsEmpty())
	assert.Len(t, w.Lines(), 22)
}

func TestWellFromData(t *testing.T) {
	w := WellFromData(10, []Line{
		0b1000000000,
		0b0000000000,
		0b0000000000,
		0b1100000001,
	})
	assert.Equal(t, 4, w.Height())
	assert.Equal(t, Line(0b1000000011), w.Line(0))
	assert.Equal(t, Line(0b0000000001), w.Line(3))
	assert.Panics(t, func() { WellFromData(4, []Line{0b10000, 0, 0, 0}) })
}

func TestEtch(t *testing.T) {
	w := NewWell(10, 6)
	placements := []Player{
		{L, Spawn, Point{3, 1}},
		{O, Spawn, Point{-1, 2}},
		{I, Right, Point{7, 3}},
	}
	for _, p := range placements {
		require.False(t, w.Test(p.Sprite(), p.Pt), "test %s", p)
		w.Etch(p.Sprite(), p.Pt)
	}
	want := []Line{
		0b1000111011,
		0b1000100011,
		0b1000000000,
		0b1000000000,
		0,
		0,
	}
	for i, l := range want {
		if w.Line(i) != l {
			t.Errorf("row %d = %s != %s", i,
				strconv.FormatUint(uint64(w.Line(i)), 2),
				strconv.FormatUint(uint64(l), 2))
		}
	}
}

func TestTestBounds(t *testing.T) {
	w := NewWell(10, 6)
	vert := I.Sprite(Right)
	cases := []struct {
		s       Sprite
		pt      Point
		illegal bool
	}{
		{vert, Point{-4, 5}, true},
		{vert, Point{10, 5}, true},
		{vert, Point{3, -1}, true},
		{vert, Point{-2, 5}, false},
		{vert, Point{-3, 5}, true},
		{vert, Point{7, 5}, false},
		{vert, Point{8, 5}, true},
		{vert, Point{3, 3}, false},
		{vert, Point{3, 2}, true},
		{vert, Point{3, 10}, false},
		{vert, Point{20, 10}, true},
		{I.Sprite(Spawn), Point{-1, 3}, true},
		{I.Sprite(Spawn), Point{0, 3}, false},
		{I.Sprite(Spawn), Point{6, 3}, false},
		{I.Sprite(Spawn), Point{7, 3}, true},
		{O.Sprite(Spawn), Point{-1, 2}, false},
		{O.Sprite(Spawn), Point{-1, 1}, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.illegal, w.Test(tc.s, tc.pt), "%v at %v", tc.s, tc.pt)
	}

	w.SetLine(0, 0b0000010000)
	assert.True(t, w.Test(vert, Point{2, 3}))
	assert.False(t, w.Test(vert, Point{2, 4}))
}

func TestCollisionSymmetry(t *testing.T) {
	base := WellFromData(10, []Line{
		0, 0, 0, 0, 0, 0, 0,
		0b0000110000,
		0b0111111001,
		0b0110111111,
	})
	for _, p := range AllPieces {
		for r := Spawn; r <= Left; r++ {
			s := p.Sprite(r)
			for x := -3; x < base.Width(); x++ {
				start := Point{x, base.Height()}
				if base.Test(s, start) {
					continue
				}
				rest := base.TraceDown(s, start)
				assert.Equal(t, rest, base.TraceDown(s, rest), "trace idempotent %s%s x=%d", p, r, x)
				trial := *base
				trial.Etch(s, rest)
				assert.True(t, trial.Test(s, rest), "etched %s%s x=%d", p, r, x)
				assert.Equal(t, base.CountBlocks()+4, trial.CountBlocks())
			}
		}
	}
}

func TestLines(t *testing.T) {
	w := NewWell(4, 5)
	w.SetLine(0, 0b0001)
	w.SetLine(1, 0b0011)
	w.SetLine(2, 0b0111)
	w.SetLine(4, 0b1111)

	old := w.SetLine(3, 0xff)
	assert.Equal(t, Line(0), old)
	assert.Equal(t, Line(0xf), w.Line(3), "masked to width")
	assert.True(t, w.TestLine(3))

	removed := w.RemoveLine(1)
	assert.Equal(t, Line(0b0011), removed)
	assert.Equal(t, []Line{0b0001, 0b0111, 0xf, 0xf, 0}, w.Lines())

	top := w.InsertLine(0, 0b1000)
	assert.Equal(t, Line(0), top)
	assert.Equal(t, []Line{0b1000, 0b0001, 0b0111, 0xf, 0xf}, w.Lines())

	top = w.InsertLine(2, 0b0100)
	assert.Equal(t, Line(0xf), top)
	assert.Equal(t, []Line{0b1000, 0b0001, 0b0100, 0b0111, 0xf}, w.Lines())
}

func TestWallKick(t *testing.T) {
	w := NewWell(10, 6)
	w.SetLine(1, 1<<4)
	s := O.Sprite(Spawn)
	kicks := []Point{{0, 0}, {0, 1}, {0, 2}}
	require.True(t, w.Test(s, Point{3, 3}))
	require.False(t, w.Test(s, Point{3, 4}))
	require.False(t, w.Test(s, Point{3, 5}))
	pt, ok := w.WallKick(s, kicks, Point{3, 3})
	assert.True(t, ok)
	assert.Equal(t, Point{3, 4}, pt)

	_, ok = w.WallKick(s, []Point{{0, 0}, {0, -1}}, Point{3, 3})
	assert.False(t, ok)
}

func TestFloodFill(t *testing.T) {
	w := WellFromData(10, []Line{
		0b0000000011,
		0b0000011011,
		0b0001100100,
		0b1000000100,
		0b0100101000,
		0b0011010000,
	})
	want := WellFromData(10, []Line{
		0b1111111111,
		0b1111111111,
		0b1111111100,
		0b1111111100,
		0b0111111000,
		0b0011010000,
	})
	assert.Equal(t, 15, w.CountHoles())
	w.FloodFill()
	assert.Equal(t, *want, *w)
}

func TestCountHoles(t *testing.T) {
	w := NewWell(10, 8)
	assert.Equal(t, 0, w.CountHoles())

	w.SetLine(0, 0b1111101111)
	w.SetLine(1, 0b0000010000)
	assert.Equal(t, 1, w.CountHoles())

	full := NewWell(4, 4)
	for y := 0; y < 4; y++ {
		full.SetLine(y, 0xf)
	}
	assert.Equal(t, 0, full.CountHoles())

	sealed := NewWell(4, 4)
	sealed.SetLine(3, 0xf)
	assert.Equal(t, 12, sealed.CountHoles())
	assert.LessOrEqual(t, sealed.CountHoles(), 16)
}

func TestHash(t *testing.T) {
	a := NewWell(10, 8)
	b := NewWell(10, 8)
	assert.Equal(t, a.Hash(), b.Hash())
	b.SetLine(0, 1)
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), NewWell(10, 9).Hash())
}
