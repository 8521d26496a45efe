package opt

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/tetrician/ai"
)

func newFlags(o *Bot) (*flag.FlagSet, *int) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(fs)
	games := fs.Int("games", 10, "games")
	return fs, games
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetrician.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: grid\ngames: 3\ndebug: 2\n"), 0o644))
	t.Setenv("TETRICIAN_GAMES", "5")

	var o Bot
	fs, games := newFlags(&o)
	require.NoError(t, fs.Parse([]string{"-debug", "1"}))
	require.NoError(t, Load(fs, path))

	assert.Equal(t, "grid", o.Mode)
	assert.Equal(t, 5, *games)
	assert.Equal(t, 1, o.Debug)
}

func TestLoadNoFile(t *testing.T) {
	var o Bot
	fs, games := newFlags(&o)
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, Load(fs, ""))
	assert.Equal(t, 10, *games)
	assert.Equal(t, "reachable", o.Mode)

	assert.Error(t, Load(fs, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLoadBadValue(t *testing.T) {
	t.Setenv("TETRICIAN_GAMES", "many")
	var o Bot
	fs, _ := newFlags(&o)
	require.NoError(t, fs.Parse(nil))
	assert.Error(t, Load(fs, ""))
}

func TestBuildConfig(t *testing.T) {
	o := Bot{Mode: "grid", Weights: `{"Caves": -1}`}
	cfg, err := o.BuildConfig()
	require.NoError(t, err)
	assert.Equal(t, ai.Grid, cfg.Mode)
	assert.Equal(t, -1.0, cfg.Weights[ai.Caves])
	assert.Equal(t, ai.DefaultWeights[ai.Holes], cfg.Weights[ai.Holes])

	_, err = (&Bot{Mode: "dfs"}).BuildConfig()
	assert.Error(t, err)
	_, err = (&Bot{Weights: "{"}).BuildConfig()
	assert.Error(t, err)
}
