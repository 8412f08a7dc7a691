package app

import (
	"flag"

	"seat-ca/internal/config"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Layout     string
	ConfigPath string
	Strategy   string
	Threshold  int
	Scale      int
	TPS        int
	Seed       int64
}

// NewConfig returns a Config seeded from the loaded settings.
func NewConfig(base *config.Config) *Config {
	if base == nil {
		base = config.Default()
	}
	return &Config{
		Strategy:  base.Simulation.Strategy,
		Threshold: base.Simulation.Threshold,
		Scale:     base.Display.Scale,
		TPS:       base.Display.TPS,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Layout, "layout", c.Layout, "layout file to load")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "neighbor strategy: adjacent or visible")
	fs.IntVar(&c.Threshold, "threshold", c.Threshold, "occupied neighbors that empty a seat (0 = strategy default)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "layout the r key resets to: 0 reloads the layout file, otherwise a random layout with this seed")
}

// Apply copies the flags that were set on fs onto the loaded settings.
func (c *Config) Apply(base *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			base.Simulation.Strategy = c.Strategy
		case "threshold":
			base.Simulation.Threshold = c.Threshold
		case "scale":
			base.Display.Scale = c.Scale
		case "tps":
			base.Display.TPS = c.TPS
		}
	})
}
