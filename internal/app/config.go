package app

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"rulescroll/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string        `yaml:"sim"`
	CellSize int           `yaml:"cell_size"`
	TPS      int           `yaml:"tps"`
	Interval time.Duration `yaml:"interval"`
	Rule     int           `yaml:"rule"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Seed     int64         `yaml:"seed"`
	SeedMode string        `yaml:"seed_mode"`
	Density  float64       `yaml:"density"`
	HUD      bool          `yaml:"hud"`
}

// NewConfig returns a Config populated with sensible defaults. Width and
// Height are the initial window size in pixels.
func NewConfig() *Config {
	return &Config{
		Sim:      "elementary",
		CellSize: 5,
		TPS:      60,
		Interval: core.DefaultInterval,
		Rule:     150,
		Width:    200,
		Height:   200,
		Seed:     42,
		SeedMode: "center",
		Density:  0.5,
		HUD:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame loop ticks per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule (0-255)")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "initial row: center or random")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for random seeding")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status line")
}

// LoadFile overlays values from a YAML file onto c. Keys missing from the
// file keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Rule < 0 || c.Rule > 255:
		return errors.Errorf("rule must be in 0..255, got %d", c.Rule)
	case c.Interval <= 0:
		return errors.Errorf("interval must be positive, got %s", c.Interval)
	case c.SeedMode != "center" && c.SeedMode != "random":
		return errors.Errorf("unknown seed mode %q", c.SeedMode)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be in [0,1], got %g", c.Density)
	}
	w, h := c.GridSize(c.Width, c.Height)
	if w < 2 || h < 2 {
		return errors.Errorf("window %dx%d holds a %dx%d grid, need at least 2x2 cells", c.Width, c.Height, w, h)
	}
	return nil
}

// GridSize converts a pixel area into grid dimensions.
func (c *Config) GridSize(pxW, pxH int) (int, int) {
	return pxW / c.CellSize, pxH / c.CellSize
}

// SimOptions returns the key/value map handed to the sim factory.
func (c *Config) SimOptions() map[string]string {
	w, h := c.GridSize(c.Width, c.Height)
	return map[string]string{
		"w":       strconv.Itoa(w),
		"h":       strconv.Itoa(h),
		"rule":    strconv.Itoa(c.Rule),
		"seed":    c.SeedMode,
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}
