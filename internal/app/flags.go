package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"lifegrid/internal/core"
)

// Config represents the command-line parameters for the application. Every
// field can also be set from a YAML or HCL file passed with -config.
type Config struct {
	Width    int    `yaml:"width" hcl:"width,optional"`
	Height   int    `yaml:"height" hcl:"height,optional"`
	Layout   string `yaml:"layout" hcl:"layout,optional"`
	Seed     int64  `yaml:"seed" hcl:"seed,optional"`
	CellSize int    `yaml:"cell_size" hcl:"cell_size,optional"`
	Border   int    `yaml:"border" hcl:"border,optional"`
	Rate     int    `yaml:"rate" hcl:"rate,optional"`
	TPS      int    `yaml:"tps" hcl:"tps,optional"`
	Paused   bool   `yaml:"paused" hcl:"paused,optional"`
	LogLevel string `yaml:"log_level" hcl:"log_level,optional"`

	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    64,
		Height:   64,
		Layout:   "random",
		CellSize: 10,
		Border:   1,
		Rate:     core.DefaultRate,
		TPS:      60,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.StringVar(&c.Layout, "layout", c.Layout, "initial layout: random, empty or glider")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random layout (0 uses the clock)")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Border, "border", c.Border, "grid line width in pixels")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second of the GUI loop")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.File, "config", c.File, "YAML or HCL file with default settings")
}

// Load parses args into a Config. When -config names a file, the file is
// applied over the defaults and flags set on the command line are applied
// again so they take precedence. fs may carry extra flags of its own.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File == "" {
		return cfg, cfg.Validate()
	}

	fromFile := NewConfig()
	if err := fromFile.ReadFile(cfg.File); err != nil {
		return nil, err
	}
	overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	fromFile.Bind(overlay)
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if setErr != nil || overlay.Lookup(f.Name) == nil {
			return
		}
		setErr = overlay.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return nil, setErr
	}
	return fromFile, fromFile.Validate()
}

// Validate reports configuration values that cannot run.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size %d must be positive", c.CellSize))
	}
	if c.Border < 0 {
		errs = append(errs, fmt.Errorf("border %d must not be negative", c.Border))
	}
	if c.Rate <= 0 {
		errs = append(errs, fmt.Errorf("rate %d must be positive", c.Rate))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
