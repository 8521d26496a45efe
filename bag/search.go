package bag

import (
	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/tetrician/ai"
	"github.com/nelhage/tetrician/tetris"
)

// Searcher picks each piece by searching the well it will be played
// into. Choices are memoised by well hash, so a Searcher must not be
// shared between goroutines.
type Searcher struct {
	name   string
	ws     ai.Weights
	choose func(*ai.Weights, *tetris.Well) tetris.Piece
	memo   *intmap.Map[uint64, tetris.Piece]

	Hits, Misses int
}

const memoSize = 1 << 10

// NewWorst returns a generator that always deals the piece whose best
// placement scores lowest under `ws`.
func NewWorst(ws ai.Weights) *Searcher {
	return &Searcher{
		name:   "worst",
		ws:     ws,
		choose: ai.SearchWorstPiece,
		memo:   intmap.New[uint64, tetris.Piece](memoSize),
	}
}

// NewBest returns a generator that always deals the piece whose best
// placement scores highest under `ws`.
func NewBest(ws ai.Weights) *Searcher {
	return &Searcher{
		name:   "best",
		ws:     ws,
		choose: ai.SearchBestPiece,
		memo:   intmap.New[uint64, tetris.Piece](memoSize),
	}
}

func (s *Searcher) Name() string {
	return s.name
}

func (s *Searcher) Next(w *tetris.Well) (tetris.Piece, bool) {
	if w == nil {
		return tetris.NoPiece, false
	}
	h := w.Hash()
	if p, ok := s.memo.Get(h); ok {
		s.Hits++
		return p, true
	}
	s.Misses++
	p := s.choose(&s.ws, w)
	s.memo.Put(h, p)
	if s.Misses%memoSize == 0 {
		log.Debug().
			Str("generator", s.name).
			Int("hits", s.Hits).
			Int("misses", s.Misses).
			Int("size", s.memo.Len()).
			Msg("memo")
	}
	return p, true
}

func (s *Searcher) Peek() []tetris.Piece {
	return nil
}
