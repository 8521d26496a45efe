// Package selfplay runs the bot against a piece generator and
// collects the results.
package selfplay

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/tetrician/ai"
	"github.com/nelhage/tetrician/bag"
	"github.com/nelhage/tetrician/tetris"
)

type Config struct {
	Width, Height int

	Games   int
	Threads int
	Seed    int64
	// MaxPieces cuts games off after that many pieces; zero means
	// play until the bot tops out.
	MaxPieces int

	Weights   ai.Weights
	Mode      ai.Mode
	Generator string

	// Record keeps every placement in Result.Moves.
	Record bool

	Debug   int
	Verbose bool
}

// A Move is one placement made by the bot: the well before the piece
// locked and where the piece came to rest.
type Move struct {
	Well   tetris.Well
	Player tetris.Player
	Score  float64
}

type Result struct {
	ID   int
	Seed int64

	Pieces   int
	Lines    int
	Tetrises int
	// ToppedOut is false for games stopped by MaxPieces.
	ToppedOut bool

	Well  tetris.Well `json:"-"`
	Moves []Move      `json:"-"`
}

type gameSpec struct {
	id   int
	seed int64
}

// Simulate plays cfg.Games games on cfg.Threads goroutines. Each
// game's seed is derived from cfg.Seed, so results do not depend on
// scheduling.
func Simulate(ctx context.Context, cfg *Config) (Stats, error) {
	if cfg.Games <= 0 {
		return Stats{}, nil
	}
	if cfg.Width < tetris.MinWidth || cfg.Width > tetris.MaxWidth {
		return Stats{}, fmt.Errorf("well width %d out of range [%d, %d]", cfg.Width, tetris.MinWidth, tetris.MaxWidth)
	}
	if cfg.Height < tetris.MinHeight || cfg.Height > tetris.MaxHeight {
		return Stats{}, fmt.Errorf("well height %d out of range [%d, %d]", cfg.Height, tetris.MinHeight, tetris.MaxHeight)
	}
	if _, err := bag.New(cfg.Generator, 1, cfg.Weights); err != nil {
		return Stats{}, err
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = 1
	}

	results := make([]Result, cfg.Games)
	specs := make(chan gameSpec)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(specs)
		r := rand.New(rand.NewSource(cfg.Seed))
		for i := range results {
			select {
			case specs <- gameSpec{id: i, seed: r.Int63()}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			for spec := range specs {
				res, err := playGame(ctx, cfg, spec)
				if err != nil {
					return err
				}
				if cfg.Verbose {
					log.Info().
						Int("game", res.ID).
						Int("pieces", res.Pieces).
						Int("lines", res.Lines).
						Bool("topped_out", res.ToppedOut).
						Msg("game over")
				}
				results[spec.id] = res
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Stats{}, err
	}
	return Summarize(results), nil
}

func playGame(ctx context.Context, cfg *Config, spec gameSpec) (Result, error) {
	res := Result{ID: spec.id, Seed: spec.seed}
	gen, err := bag.New(cfg.Generator, spec.seed, cfg.Weights)
	if err != nil {
		return res, err
	}
	bot := ai.NewBot(ai.BotConfig{Weights: cfg.Weights, Mode: cfg.Mode, Debug: cfg.Debug})
	s := tetris.NewState(cfg.Width, cfg.Height)

	for cfg.MaxPieces == 0 || res.Pieces < cfg.MaxPieces {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("game %d: %w", spec.id, err)
		}
		p, ok := gen.Next(s.Well())
		if !ok {
			break
		}
		if s.Spawn(p) {
			res.ToppedOut = true
			break
		}
		plan := bot.Plan(s)
		if plan.Player == nil {
			res.ToppedOut = true
			break
		}
		if cfg.Record {
			res.Moves = append(res.Moves, Move{Well: *s.Well(), Player: *plan.Player, Score: plan.Score})
		}
		for _, a := range plan.Actions {
			s.Apply(a)
		}
		res.Pieces++
		n := s.ClearLines(nil)
		res.Lines += n
		if n == 4 {
			res.Tetrises++
		}
		if s.IsGameOver() {
			res.ToppedOut = true
			break
		}
	}
	res.Well = *s.Well()
	return res, nil
}
