package ai

import (
	"fmt"
	"math"

	"github.com/nelhage/tetrician/tetris"
)

// Placement is where the grid search chose to put a piece.
type Placement struct {
	Piece tetris.Piece
	Rot   tetris.Rot
	X, Y  int
	Score float64
}

func (p Placement) Player() tetris.Player {
	return tetris.Player{Piece: p.Piece, Rot: p.Rot, Pt: tetris.Point{X: p.X, Y: p.Y}}
}

func (p Placement) String() string {
	return fmt.Sprintf("%s%s x=%d y=%d score=%f", p.Piece, p.Rot, p.X, p.Y, p.Score)
}

// SearchBest tries every rotation and column for `piece`, dropping it
// straight down from above the well, and returns the best scoring
// placement. Ties go to the first placement found. It returns false
// if every placement is illegal or loses.
func SearchBest(ws *Weights, w *tetris.Well, piece tetris.Piece) (Placement, bool) {
	best := Placement{Piece: piece, Score: math.Inf(-1)}
	found := false
	for rot := tetris.Spawn; rot <= tetris.Left; rot++ {
		s := piece.Sprite(rot)
		for x := -3; x < w.Width(); x++ {
			pt := tetris.Point{X: x, Y: w.Height()}
			if w.Test(s, pt) {
				continue
			}
			pt = w.TraceDown(s, pt)
			trial := *w
			trial.Etch(s, pt)
			score := ws.Eval(&trial)
			if score > best.Score {
				best = Placement{piece, rot, pt.X, pt.Y, score}
				found = true
			}
		}
	}
	return best, found
}

func pieceScore(ws *Weights, w *tetris.Well, piece tetris.Piece) float64 {
	p, ok := SearchBest(ws, w, piece)
	if !ok {
		return math.Inf(-1)
	}
	return p.Score
}

var (
	worstOrder = []tetris.Piece{tetris.S, tetris.Z, tetris.O, tetris.I, tetris.L, tetris.J, tetris.T}
	bestOrder  = []tetris.Piece{tetris.T, tetris.J, tetris.L, tetris.I, tetris.O, tetris.Z, tetris.S}
)

// SearchWorstPiece returns the piece whose best placement scores
// lowest.
func SearchWorstPiece(ws *Weights, w *tetris.Well) tetris.Piece {
	worst, score := worstOrder[0], math.Inf(1)
	for _, p := range worstOrder {
		if s := pieceScore(ws, w, p); s < score {
			worst, score = p, s
		}
	}
	return worst
}

// SearchBestPiece returns the piece whose best placement scores
// highest.
func SearchBestPiece(ws *Weights, w *tetris.Well) tetris.Piece {
	best, score := bestOrder[0], math.Inf(-1)
	for _, p := range bestOrder {
		if s := pieceScore(ws, w, p); s > score {
			best, score = p, s
		}
	}
	return best
}
