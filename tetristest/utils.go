package tetristest

import (
	"github.com/nelhage/tetrician/notation"
	"github.com/nelhage/tetrician/tetris"
)

func Well(text string) *tetris.Well {
	w, e := notation.ParseWell(text)
	if e != nil {
		panic(e)
	}
	return w
}

func Actions(s string) []tetris.Action {
	as, e := notation.ParseActions(s)
	if e != nil {
		panic(e)
	}
	return as
}

// State builds a state on the given well and replays `actions` after
// spawning `piece`.
func State(text string, piece tetris.Piece, actions string) *tetris.State {
	s := tetris.StateWithWell(Well(text))
	s.Spawn(piece)
	for _, a := range Actions(actions) {
		s.Apply(a)
	}
	return s
}
