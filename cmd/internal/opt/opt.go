// Package opt holds flags shared between tetrician subcommands.
package opt

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/nelhage/tetrician/ai"
)

type Bot struct {
	Debug   int
	Mode    string
	Weights string
}

func (o *Bot) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
	flags.StringVar(&o.Mode, "mode", "reachable", "search mode (reachable or grid)")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights, layered over the defaults")
}

func (o *Bot) BuildConfig() (ai.BotConfig, error) {
	mode, err := ai.ParseMode(o.Mode)
	if err != nil {
		return ai.BotConfig{}, err
	}
	ws, err := ai.ParseWeights(o.Weights)
	if err != nil {
		return ai.BotConfig{}, err
	}
	return ai.BotConfig{Weights: ws, Mode: mode, Debug: o.Debug}, nil
}

// SetupLogging points the global zerolog logger at stderr. A debug
// level above zero enables debug output.
func (o *Bot) SetupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if o.Debug > 0 {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

const EnvPrefix = "TETRICIAN"

// Load fills every flag not given on the command line from the
// environment (TETRICIAN_<FLAG>, dashes as underscores) or, failing
// that, from the config file at `path`, if any.
func Load(flags *flag.FlagSet, path string) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", path, err)
		}
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var err error
	flags.VisitAll(func(f *flag.Flag) {
		if err != nil || set[f.Name] || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		if e := f.Value.Set(v.GetString(f.Name)); e != nil {
			err = fmt.Errorf("config %s: %w", f.Name, e)
		}
	})
	return err
}
