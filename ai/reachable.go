package ai

import (
	"math"

	"github.com/nelhage/tetrician/tetris"
)

const (
	visitedStride = (tetris.MaxWidth + 3) * 4
	visitedRows   = tetris.MaxHeight + 5
	visitedSize   = visitedStride * visitedRows
)

// Result is the outcome of a reachable search: the best resting
// place found and the inputs that lead there from the starting
// player. Player is nil if no placement avoids losing.
type Result struct {
	Score   float64
	Actions []tetris.Action
	Player  *tetris.Player

	Visited   int
	Evaluated int
}

type searcher struct {
	ws   *Weights
	well *tetris.Well

	visited [visitedSize]bool
	path    []tetris.Action
	best    Result
}

func visitIndex(p tetris.Player) (int, bool) {
	x, y := p.Pt.X+3, p.Pt.Y
	if x < 0 || x >= tetris.MaxWidth+3 || y < 0 || y >= visitedRows {
		return 0, false
	}
	return y*visitedStride + x*4 + int(p.Rot&3), true
}

// SearchReachable explores every position reachable from `start` by
// soft drops, shifts and SRS rotations, and returns the best scoring
// resting position along with the inputs that reach it. The input
// sequence ends in a hard drop. A start above the well is first
// soft-dropped to the spawn row.
func SearchReachable(ws *Weights, w *tetris.Well, start tetris.Player) Result {
	s := &searcher{ws: ws, well: w}
	s.best.Score = math.Inf(-1)
	if w.Test(start.Sprite(), start.Pt) {
		return s.best
	}
	// Bring a start placed high above the well down to the spawn
	// row, recording the drops, so it stays inside the visited index.
	for start.Pt.Y > w.Height() {
		down := start.MoveDown()
		if w.Test(start.Sprite(), down.Pt) {
			break
		}
		s.path = append(s.path, tetris.SoftDrop)
		start = down
	}
	s.visit(start)
	if s.best.Player != nil {
		s.best.Actions = append(s.best.Actions, tetris.HardDrop)
	}
	return s.best
}

func (s *searcher) visit(p tetris.Player) {
	i, ok := visitIndex(p)
	if !ok || s.visited[i] {
		return
	}
	s.visited[i] = true
	s.best.Visited++

	sp := p.Sprite()
	if down := p.MoveDown(); s.well.Test(sp, down.Pt) {
		s.rest(p)
	} else {
		s.step(tetris.SoftDrop, down)
	}
	if left := p.MoveLeft(); !s.well.Test(sp, left.Pt) {
		s.step(tetris.MoveLeft, left)
	}
	if right := p.MoveRight(); !s.well.Test(sp, right.Pt) {
		s.step(tetris.MoveRight, right)
	}
	if cw := tetris.KickCW(s.well, p); cw != p {
		s.step(tetris.RotateCW, cw)
	}
	if ccw := tetris.KickCCW(s.well, p); ccw != p {
		s.step(tetris.RotateCCW, ccw)
	}
}

func (s *searcher) step(a tetris.Action, next tetris.Player) {
	s.path = append(s.path, a)
	s.visit(next)
	s.path = s.path[:len(s.path)-1]
}

func (s *searcher) rest(p tetris.Player) {
	trial := *s.well
	trial.Etch(p.Sprite(), p.Pt)
	s.best.Evaluated++
	score := s.ws.Eval(&trial)
	if score > s.best.Score {
		s.best.Score = score
		s.best.Actions = append(s.best.Actions[:0], s.path...)
		rest := p
		s.best.Player = &rest
	}
}
