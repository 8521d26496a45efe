package serve

import (
	"context"
	"flag"
	"fmt"
	"net"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/nelhage/tetrician/cmd/internal/opt"
	"github.com/nelhage/tetrician/rpc"
)

type Command struct {
	port   int
	config string
	bot    opt.Bot
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve analysis RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55430, "bind port")
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

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Error().Err(err).Int("port", c.port).Msg("listen")
		return subcommands.ExitFailure
	}
	srv := grpc.NewServer()
	rpc.Register(srv, rpc.NewServer(cfg.Weights, c.bot.Debug))

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()
	log.Info().Str("addr", lis.Addr().String()).Msg("serving")
	if err := srv.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
