package gencorpus

import (
	"context"
	"flag"
	"runtime"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/tetrician/cmd/internal/opt"
	"github.com/nelhage/tetrician/corpus"
	"github.com/nelhage/tetrician/selfplay"
)

type Command struct {
	width, height int
	seed          int64

	games     int
	maxPieces int
	generator string
	threads   int

	config string
	output string

	bot opt.Bot
}

func (*Command) Name() string     { return "gencorpus" }
func (*Command) Synopsis() string { return "Generate a parquet corpus of evaluated placements" }
func (*Command) Usage() string {
	return `gencorpus [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.width, "width", 10, "well width")
	flags.IntVar(&c.height, "height", 20, "well height")
	flags.IntVar(&c.games, "games", 100, "games to generate")
	flags.IntVar(&c.maxPieces, "max-pieces", 500, "pieces per game")
	flags.StringVar(&c.generator, "generator", "bag", "piece generator")
	flags.Int64Var(&c.seed, "seed", 0, "Random seed")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "Number of threads")
	flags.StringVar(&c.config, "config", "", "config file")
	flags.StringVar(&c.output, "output", "placements.parquet", "output file")
	c.bot.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := opt.Load(flag, c.config); err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	c.bot.SetupLogging()
	bcfg, err := c.bot.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("bot options")
		return subcommands.ExitUsageError
	}
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}

	st, err := selfplay.Simulate(ctx, &selfplay.Config{
		Width:     c.width,
		Height:    c.height,
		Games:     c.games,
		Threads:   c.threads,
		Seed:      c.seed,
		MaxPieces: c.maxPieces,
		Weights:   bcfg.Weights,
		Mode:      bcfg.Mode,
		Generator: c.generator,
		Debug:     c.bot.Debug,
		Record:    true,
	})
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitFailure
	}

	var rows []corpus.Row
	for i := range st.Games {
		rows = append(rows, corpus.FromGame(&st.Games[i])...)
	}
	if err := corpus.Write(c.output, rows); err != nil {
		log.Error().Err(err).Str("output", c.output).Msg("write corpus")
		return subcommands.ExitFailure
	}
	log.Info().
		Int("games", st.Count).
		Int("rows", len(rows)).
		Int64("seed", c.seed).
		Str("output", c.output).
		Msg("wrote corpus")
	return subcommands.ExitSuccess
}
