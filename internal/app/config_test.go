package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-rule", "30", "-cell", "4", "-interval", "50ms", "-hud=false"}))

	assert.Equal(t, 30, cfg.Rule)
	assert.Equal(t, 4, cfg.CellSize)
	assert.Equal(t, 50*time.Millisecond, cfg.Interval)
	assert.False(t, cfg.HUD)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule: 90\ninterval: 15ms\nseed_mode: random\n"), 0o644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, 90, cfg.Rule)
	assert.Equal(t, 15*time.Millisecond, cfg.Interval)
	assert.Equal(t, "random", cfg.SeedMode)
	assert.Equal(t, 5, cfg.CellSize, "missing keys keep defaults")
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule: [1, 2"), 0o644))
	assert.Error(t, cfg.LoadFile(path))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"cell size": func(c *Config) { c.CellSize = 0 },
		"rule":      func(c *Config) { c.Rule = 256 },
		"interval":  func(c *Config) { c.Interval = 0 },
		"seed mode": func(c *Config) { c.SeedMode = "edge" },
		"density":   func(c *Config) { c.Density = 1.5 },
		"tiny grid": func(c *Config) { c.Width = 9 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, NewConfig().Validate())
}

func TestSimOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 203, 101
	opts := cfg.SimOptions()
	assert.Equal(t, "40", opts["w"])
	assert.Equal(t, "20", opts["h"])
	assert.Equal(t, "150", opts["rule"])
	assert.Equal(t, "center", opts["seed"])
	assert.Equal(t, "0.5", opts["density"])
}
