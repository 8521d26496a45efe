// Package bag implements piece generators: the 7-bag randomizer used
// by modern Tetris games, and generators that pick pieces by searching
// the current well.
package bag

import (
	"fmt"
	"math"
	"math/rand"

	"lukechampine.com/frand"

	"github.com/nelhage/tetrician/ai"
	"github.com/nelhage/tetrician/tetris"
)

// A Generator hands out the next piece to play. Generators that look
// at the well may return false when they cannot pick a piece.
type Generator interface {
	Next(w *tetris.Well) (tetris.Piece, bool)
	// Peek returns the pieces already committed to, in order. It may
	// be empty.
	Peek() []tetris.Piece
}

// Official deals pieces in shuffled bags of all seven pieces.
type Official struct {
	seed int64
	rng  *rand.Rand
	bag  []tetris.Piece
}

// NewOfficial returns a 7-bag generator. A zero seed picks a random
// one; Seed reports the seed in use.
func NewOfficial(seed int64) *Official {
	if seed == 0 {
		seed = int64(frand.Uint64n(math.MaxInt64)) + 1
	}
	return &Official{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (o *Official) Seed() int64 {
	return o.seed
}

func (o *Official) refill() {
	o.bag = o.bag[:0]
	for _, i := range o.rng.Perm(tetris.NumPieces) {
		o.bag = append(o.bag, tetris.PieceFromUint8(uint8(i)))
	}
}

func (o *Official) Next(*tetris.Well) (tetris.Piece, bool) {
	if len(o.bag) == 0 {
		o.refill()
	}
	p := o.bag[0]
	o.bag = o.bag[1:]
	return p, true
}

func (o *Official) Peek() []tetris.Piece {
	if len(o.bag) == 0 {
		o.refill()
	}
	return append([]tetris.Piece(nil), o.bag...)
}

// Names lists the generators New understands.
var Names = []string{"bag", "worst", "best"}

// New builds a generator by name. Searching generators judge wells
// with `ws`.
func New(name string, seed int64, ws ai.Weights) (Generator, error) {
	switch name {
	case "bag", "":
		return NewOfficial(seed), nil
	case "worst":
		return NewWorst(ws), nil
	case "best":
		return NewBest(ws), nil
	}
	return nil, fmt.Errorf("unknown generator: %q", name)
}
