package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/tetrician/ai"
	"github.com/nelhage/tetrician/cmd/internal/opt"
	"github.com/nelhage/tetrician/notation"
	"github.com/nelhage/tetrician/tetris"
)

type Command struct {
	piece   string
	worst   bool
	best    bool
	explain bool
	quiet   bool
	config  string

	bot opt.Bot
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Find the best placement of a piece in a well" }
func (*Command) Usage() string {
	return `analyze [options] WELL.txt

Read a well in text form (or from stdin if the file is "-") and search
for the best placement of -piece. With -worst or -best, pick the piece
an adversarial or generous generator would deal instead.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.piece, "piece", "T", "piece to place")
	flags.BoolVar(&c.worst, "worst", false, "analyze the worst piece for this well")
	flags.BoolVar(&c.best, "best", false, "analyze the best piece for this well")
	flags.BoolVar(&c.explain, "explain", false, "explain the evaluation of the result")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print well diagrams")
	flags.StringVar(&c.config, "config", "", "config file")
	c.bot.AddFlags(flags)
}

func readWell(path string) (*tetris.Well, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return notation.ParseWell(string(bs))
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 1 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
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
	w, err := readWell(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Str("path", flag.Arg(0)).Msg("read well")
		return subcommands.ExitFailure
	}

	var piece tetris.Piece
	switch {
	case c.worst:
		piece = ai.SearchWorstPiece(&cfg.Weights, w)
	case c.best:
		piece = ai.SearchBestPiece(&cfg.Weights, w)
	default:
		piece, err = notation.ParsePiece(c.piece)
		if err != nil {
			log.Error().Err(err).Msg("-piece")
			return subcommands.ExitUsageError
		}
	}

	st := tetris.StateWithWell(w)
	if st.Spawn(piece) {
		fmt.Printf("%s: no room to spawn\n", piece)
		return subcommands.ExitSuccess
	}
	res := ai.NewBot(cfg).Plan(st)
	if res.Player == nil {
		fmt.Printf("%s: every placement loses\n", piece)
		return subcommands.ExitSuccess
	}
	fmt.Printf("piece=%s rest=%s score=%f\n", piece, *res.Player, res.Score)
	fmt.Printf("actions=%s visited=%d evaluated=%d\n",
		notation.FormatActions(res.Actions), res.Visited, res.Evaluated)

	final := *w
	final.Etch(res.Player.Sprite(), res.Player.Pt)
	if !c.quiet {
		fmt.Print(notation.FormatWell(&final))
	}
	if c.explain {
		ai.ExplainScore(&cfg.Weights, os.Stdout, &final)
	}
	return subcommands.ExitSuccess
}
