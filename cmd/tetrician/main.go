package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/tetrician/cmd/internal/analyze"
	"github.com/nelhage/tetrician/cmd/internal/gencorpus"
	"github.com/nelhage/tetrician/cmd/internal/play"
	"github.com/nelhage/tetrician/cmd/internal/selfplay"
	"github.com/nelhage/tetrician/cmd/internal/serve"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&selfplay.Games{}, "")
	subcommands.Register(&gencorpus.Command{}, "")
	subcommands.Register(&serve.Command{}, "")

	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	status := subcommands.Execute(ctx)
	stop()
	os.Exit(int(status))
}
