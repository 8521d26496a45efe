package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/tetrician/ai"
	"github.com/nelhage/tetrician/bag"
	"github.com/nelhage/tetrician/cmd/internal/opt"
	"github.com/nelhage/tetrician/logs"
	"github.com/nelhage/tetrician/selfplay"
)

type Command struct {
	width, height int
	seed          int64

	games     int
	maxPieces int
	generator string
	threads   int

	db      string
	summary string
	config  string
	verbose bool

	bot opt.Bot
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play the bot against a piece generator and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.width, "width", 10, "well width")
	flags.IntVar(&c.height, "height", 20, "well height")
	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play")
	flags.IntVar(&c.maxPieces, "max-pieces", 1000, "cut games off after this many pieces (0 for no limit)")
	flags.StringVar(&c.generator, "generator", "bag", "piece generator ("+strings.Join(bag.Names, ", ")+")")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of parallel threads")
	flags.StringVar(&c.db, "db", "", "record games to this sqlite database")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.config, "config", "", "config file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
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

	cfg := &selfplay.Config{
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
		Verbose:   c.verbose,
	}
	start := time.Now()
	st, err := selfplay.Simulate(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitFailure
	}

	if c.db != "" {
		if err := c.record(cfg, &st, start); err != nil {
			log.Error().Err(err).Str("db", c.db).Msg("record games")
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, cfg, &st); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}

	log.Info().
		Int("games", st.Count).
		Int64("seed", c.seed).
		Str("mode", cfg.Mode.String()).
		Str("generator", cfg.Generator).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	p.Fprintf(tw, "games\t%d\n", st.Count)
	p.Fprintf(tw, "topped out\t%d\n", st.ToppedOut)
	p.Fprintf(tw, "cut off\t%d\n", st.Cutoff)
	p.Fprintf(tw, "pieces\t%d\n", st.Pieces)
	p.Fprintf(tw, "lines\t%d (max %d)\n", st.Lines, st.MaxLines)
	p.Fprintf(tw, "tetrises\t%d\n", st.Tetrises)
	p.Fprintf(tw, "lines/game\t%.2f ± %.2f\n", st.MeanLines, st.StdDevLines)
	p.Fprintf(tw, "pieces/game\t%.2f\n", st.MeanPieces)
	tw.Flush()

	return subcommands.ExitSuccess
}

func (c *Command) record(cfg *selfplay.Config, st *selfplay.Stats, when time.Time) error {
	repo, err := logs.Open(c.db)
	if err != nil {
		return err
	}
	defer repo.Close()
	ws, err := json.Marshal(&cfg.Weights)
	if err != nil {
		return err
	}
	games := make([]*logs.Game, 0, len(st.Games))
	for _, r := range st.Games {
		games = append(games, &logs.Game{
			Timestamp: when,
			Seed:      r.Seed,
			Width:     cfg.Width,
			Height:    cfg.Height,
			Mode:      cfg.Mode.String(),
			Generator: cfg.Generator,
			Weights:   string(ws),
			Pieces:    r.Pieces,
			Lines:     r.Lines,
			Tetrises:  r.Tetrises,
			ToppedOut: r.ToppedOut,
		})
	}
	return repo.InsertGames(games)
}

type Summary struct {
	Cmdline   []string
	Seed      int64
	Mode      string
	Generator string
	Weights   ai.Weights
	Stats     *selfplay.Stats
}

func (c *Command) writeSummary(path string, cfg *selfplay.Config, stats *selfplay.Stats) error {
	summary := Summary{
		Cmdline:   os.Args,
		Seed:      cfg.Seed,
		Mode:      cfg.Mode.String(),
		Generator: cfg.Generator,
		Weights:   cfg.Weights,
		Stats:     stats,
	}
	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0o644)
}

// Games prints results recorded in a database.
type Games struct {
	mode string
}

func (*Games) Name() string     { return "games" }
func (*Games) Synopsis() string { return "Summarize selfplay games recorded with -db" }
func (*Games) Usage() string {
	return `games [flags] GAMES.db
`
}

func (g *Games) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&g.mode, "mode", "", "only list games played in this search mode")
}

func (g *Games) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 1 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("open")
		return subcommands.ExitFailure
	}
	defer repo.Close()

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer tw.Flush()
	if g.mode == "" {
		sums, err := repo.Summaries()
		if err != nil {
			log.Error().Err(err).Msg("query")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(tw, "mode\tgenerator\tgames\tmean lines\tmax lines\n")
		for _, s := range sums {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%d\n", s.Mode, s.Generator, s.Games, s.MeanLines, s.MaxLines)
		}
		return subcommands.ExitSuccess
	}
	games, err := repo.Games(g.mode)
	if err != nil {
		log.Error().Err(err).Msg("query")
		return subcommands.ExitFailure
	}
	fmt.Fprintf(tw, "id\tseed\tgenerator\tpieces\tlines\ttopped out\n")
	for _, r := range games {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%v\n", r.ID, r.Seed, r.Generator, r.Pieces, r.Lines, r.ToppedOut)
	}
	return subcommands.ExitSuccess
}
