package ai

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/tetrician/tetris"
	"github.com/nelhage/tetrician/tetristest"
)

const overhang = `
|          |
|          |
|          |
|          |
|          |
|######  ##|
|######    |
|######    |
`

const rightWell = `
|          |
|          |
|######### |
|######### |
|######### |
|######### |
|######### |
`

func TestSearchBestEmpty(t *testing.T) {
	w := tetris.NewWell(10, 20)
	p, ok := SearchBest(&DefaultWeights, w, tetris.I)
	require.True(t, ok)
	assert.Equal(t, tetris.Spawn, p.Rot)
	assert.Equal(t, 0, p.X)
	assert.Equal(t, 1, p.Y)
	assert.InDelta(t, -0.510066*4-0.184483, p.Score, 1e-9)
}

func TestSearchAvoidsLosing(t *testing.T) {
	w := tetristest.Well(rightWell)

	p, ok := SearchBest(&DefaultWeights, w, tetris.I)
	require.True(t, ok)
	assert.False(t, math.IsInf(p.Score, 0))
	trial := *w
	trial.Etch(p.Player().Sprite(), p.Player().Pt)
	assert.Equal(t, 4, Crunch(&trial).Values[CompleteLines])

	res := SearchReachable(&DefaultWeights, w, tetris.SpawnPlayer(w, tetris.I))
	require.NotNil(t, res.Player)
	assert.False(t, math.IsInf(res.Score, 0))
	assert.Equal(t, tetris.HardDrop, res.Actions[len(res.Actions)-1])

	s := tetris.StateWithWell(w)
	s.Spawn(tetris.I)
	for _, a := range res.Actions {
		s.Apply(a)
	}
	assert.Equal(t, 4, s.ClearLines(nil))
	assert.False(t, s.IsGameOver())
}

func TestSearchPiece(t *testing.T) {
	w := tetristest.Well(rightWell)
	assert.Equal(t, tetris.S, SearchWorstPiece(&DefaultWeights, w))
	assert.Equal(t, tetris.I, SearchBestPiece(&DefaultWeights, w))

	for _, p := range []tetris.Piece{tetris.O, tetris.S, tetris.Z} {
		_, ok := SearchBest(&DefaultWeights, w, p)
		assert.False(t, ok, "%s should have nowhere to go", p)
	}
	l, ok := SearchBest(&DefaultWeights, w, tetris.L)
	require.True(t, ok)
	assert.Equal(t, tetris.Left, l.Rot)
}

func TestSearchReachableOverhang(t *testing.T) {
	w := tetristest.Well(overhang)

	grid, ok := SearchBest(&DefaultWeights, w, tetris.O)
	require.True(t, ok)
	assert.Equal(t, 5, grid.X)
	assert.Equal(t, 2, grid.Y)

	o := tetris.O.Sprite(tetris.Spawn)
	assert.Equal(t, tetris.Point{X: 7, Y: 5}, w.TraceDown(o, tetris.Point{X: 7, Y: w.Height()}),
		"a straight drop lands on the overhang")

	res := SearchReachable(&DefaultWeights, w, tetris.SpawnPlayer(w, tetris.O))
	require.NotNil(t, res.Player)
	assert.Equal(t, tetris.Point{X: 7, Y: 2}, res.Player.Pt)
	assert.Greater(t, res.Score, grid.Score)
	assert.InDelta(t, -0.510066*24-0.184483*6, res.Score, 1e-9)
	assert.Greater(t, res.Visited, res.Evaluated)

	s := tetris.StateWithWell(w)
	s.Spawn(tetris.O)
	for _, a := range res.Actions {
		s.Apply(a)
	}
	_, active := s.Player()
	assert.False(t, active)
	assert.Equal(t, tetris.Line(0b1100111111), s.Well().Line(0))
	assert.Equal(t, tetris.Line(0b1100111111), s.Well().Line(1))
	assert.Equal(t, tetris.Line(0b1100111111), s.Well().Line(2))
}

func TestSearchReachableHighStart(t *testing.T) {
	w := tetristest.Well(overhang)
	high := tetris.Player{Piece: tetris.O, Pt: tetris.Point{X: 3, Y: 40}}

	res := SearchReachable(&DefaultWeights, w, high)
	require.NotNil(t, res.Player)
	assert.Equal(t, tetris.Point{X: 7, Y: 2}, res.Player.Pt)

	s := tetris.StateWithWell(w)
	s.SetPlayer(high)
	for _, a := range res.Actions {
		s.Apply(a)
	}
	assert.Equal(t, tetris.Line(0b1100111111), s.Well().Line(0))
}

func TestSearchNowhere(t *testing.T) {
	blocked := tetristest.Well(`
|    |
|    |
| ## |
| ## |
`)
	_, ok := SearchBest(&DefaultWeights, blocked, tetris.T)
	assert.False(t, ok)
	res := SearchReachable(&DefaultWeights, blocked, tetris.SpawnPlayer(blocked, tetris.T))
	assert.Nil(t, res.Player)
	assert.Empty(t, res.Actions)

	full := tetris.NewWell(10, 6)
	full.SetLine(5, 1<<4)
	res = SearchReachable(&DefaultWeights, full, tetris.SpawnPlayer(full, tetris.T))
	assert.Nil(t, res.Player)
	assert.Empty(t, res.Actions)
	assert.Equal(t, 0, res.Visited)
}

func TestVisitIndexBounds(t *testing.T) {
	seen := make(map[int]bool)
	for y := 0; y < visitedRows; y++ {
		for x := -3; x < tetris.MaxWidth; x++ {
			for r := tetris.Spawn; r <= tetris.Left; r++ {
				i, ok := visitIndex(tetris.Player{Rot: r, Pt: tetris.Point{X: x, Y: y}})
				require.True(t, ok)
				require.Less(t, i, visitedSize)
				require.False(t, seen[i])
				seen[i] = true
			}
		}
	}
	_, ok := visitIndex(tetris.Player{Pt: tetris.Point{X: -4, Y: 0}})
	assert.False(t, ok)
	_, ok = visitIndex(tetris.Player{Pt: tetris.Point{X: 0, Y: visitedRows}})
	assert.False(t, ok)
}

func BenchmarkSearchBest(b *testing.B) {
	w := tetristest.Well(overhang)
	for i := 0; i < b.N; i++ {
		SearchBest(&DefaultWeights, w, tetris.T)
	}
}

func BenchmarkSearchReachable(b *testing.B) {
	w := tetristest.Well(overhang)
	start := tetris.SpawnPlayer(w, tetris.T)
	for i := 0; i < b.N; i++ {
		SearchReachable(&DefaultWeights, w, start)
	}
}
