package play

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/tetrician/ai"
	"github.com/nelhage/tetrician/bag"
	"github.com/nelhage/tetrician/cmd/internal/opt"
	"github.com/nelhage/tetrician/notation"
	"github.com/nelhage/tetrician/tetris"
)

type Command struct {
	width, height int
	seed          int64
	pieces        int
	generator     string
	delay         time.Duration
	config        string

	bot opt.Bot
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Watch the bot play a single game" }
func (*Command) Usage() string {
	return `play [flags]

Play a game with the bot, printing the well as each piece spawns.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.width, "width", 10, "well width")
	flags.IntVar(&c.height, "height", 20, "well height")
	flags.Int64Var(&c.seed, "seed", 0, "random seed")
	flags.IntVar(&c.pieces, "pieces", 100, "stop after this many pieces (0 for no limit)")
	flags.StringVar(&c.generator, "generator", "bag", "piece generator")
	flags.DurationVar(&c.delay, "delay", 0, "pause between pieces")
	flags.StringVar(&c.config, "config", "", "config file")
	c.bot.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := opt.Load(flag, c.config); err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	c.bot.SetupLogging()
	cfg, err := c.bot.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("bot options")
		return subcommands.ExitUsageError
	}
	if c.width < tetris.MinWidth || c.width > tetris.MaxWidth ||
		c.height < tetris.MinHeight || c.height > tetris.MaxHeight {
		log.Error().Int("width", c.width).Int("height", c.height).Msg("bad well size")
		return subcommands.ExitUsageError
	}
	gen, err := bag.New(c.generator, c.seed, cfg.Weights)
	if err != nil {
		log.Error().Err(err).Msg("-generator")
		return subcommands.ExitUsageError
	}

	bot := ai.NewBot(cfg)
	s := tetris.NewState(c.width, c.height)
	lines, n := 0, 0
	for c.pieces == 0 || n < c.pieces {
		if ctx.Err() != nil {
			break
		}
		p, ok := gen.Next(s.Well())
		if !ok {
			break
		}
		if s.Spawn(p) {
			fmt.Printf("%s cannot spawn\n", p)
			break
		}
		fmt.Printf("piece %d: %s next=%s lines=%d\n", n+1, p, formatPieces(gen.Peek()), lines)
		fmt.Print(notation.FormatScene(s.Scene()))
		if !bot.Play(s) {
			fmt.Printf("%s has nowhere to go\n", p)
			break
		}
		n++
		lines += s.ClearLines(nil)
		if s.IsGameOver() {
			break
		}
		if c.delay > 0 {
			time.Sleep(c.delay)
		}
	}
	fmt.Print(notation.FormatWell(s.Well()))
	fmt.Printf("pieces=%d lines=%d\n", n, lines)
	return subcommands.ExitSuccess
}

func formatPieces(ps []tetris.Piece) string {
	out := make([]byte, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.String()...)
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
