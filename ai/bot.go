package ai

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/tetrician/notation"
	"github.com/nelhage/tetrician/tetris"
)

// Mode selects the search a Bot uses.
type Mode int

const (
	// Reachable searches every position the piece can reach.
	Reachable Mode = iota
	// Grid drops each rotation straight down from every column.
	Grid
)

func (m Mode) String() string {
	if m == Grid {
		return "grid"
	}
	return "reachable"
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "reachable", "":
		return Reachable, nil
	case "grid":
		return Grid, nil
	}
	return Reachable, fmt.Errorf("unknown search mode: %q", s)
}

type BotConfig struct {
	Weights Weights
	Mode    Mode
	Debug   int
}

// Bot chooses moves for the active player of a State.
type Bot struct {
	cfg    BotConfig
	logger zerolog.Logger
}

func NewBot(cfg BotConfig) *Bot {
	return &Bot{
		cfg:    cfg,
		logger: log.With().Str("component", "bot").Str("mode", cfg.Mode.String()).Logger(),
	}
}

func (b *Bot) Config() BotConfig {
	return b.cfg
}

// Plan searches for a move for the state's active player. The
// returned Result has a nil Player if the piece has nowhere to go.
func (b *Bot) Plan(s *tetris.State) Result {
	p, ok := s.Player()
	if !ok {
		return Result{}
	}
	var res Result
	switch b.cfg.Mode {
	case Grid:
		res = planGrid(&b.cfg.Weights, s, p)
	default:
		res = SearchReachable(&b.cfg.Weights, s.Well(), p)
	}
	if b.cfg.Debug > 0 {
		ev := b.logger.Debug().
			Str("piece", p.Piece.String()).
			Float64("score", res.Score).
			Int("visited", res.Visited).
			Int("evaluated", res.Evaluated).
			Str("actions", notation.FormatActions(res.Actions))
		if res.Player != nil {
			ev = ev.Stringer("rest", *res.Player)
		}
		ev.Msg("plan")
	}
	return res
}

// Play plans a move and replays it on the state. It returns false if
// the bot found no move.
func (b *Bot) Play(s *tetris.State) bool {
	res := b.Plan(s)
	if res.Player == nil {
		return false
	}
	for _, a := range res.Actions {
		s.Apply(a)
	}
	return true
}

// planGrid turns the grid search's placement into inputs by rotating
// first, then shifting, then hard dropping.
func planGrid(ws *Weights, s *tetris.State, start tetris.Player) Result {
	target, ok := SearchBest(ws, s.Well(), start.Piece)
	res := Result{Score: target.Score, Evaluated: 4 * (s.Well().Width() + 3)}
	if !ok {
		return res
	}
	trial := tetris.StateWithWell(s.Well())
	trial.SetPlayer(start)
	p := start
	for i := 0; i < 4 && p.Rot != target.Rot; i++ {
		trial.RotateCW()
		res.Actions = append(res.Actions, tetris.RotateCW)
		p, _ = trial.Player()
	}
	for p.Pt.X != target.X {
		a := tetris.MoveRight
		if p.Pt.X > target.X {
			a = tetris.MoveLeft
		}
		if !trial.Apply(a) {
			break
		}
		res.Actions = append(res.Actions, a)
		p, _ = trial.Player()
	}
	p.Pt = s.Well().TraceDown(p.Sprite(), p.Pt)
	if p != target.Player() {
		final := *s.Well()
		final.Etch(p.Sprite(), p.Pt)
		res.Score = ws.Eval(&final)
	}
	res.Actions = append(res.Actions, tetris.HardDrop)
	res.Player = &p
	return res
}
