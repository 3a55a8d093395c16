package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim       string
	Scale     int
	TPS       int
	Seed      int64
	Rows      int
	Cols      int
	Length    int
	Sound     bool
	Autopilot bool
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{Sim: "snake", Scale: 24, TPS: 8, Rows: 10, Cols: 30, Length: 3, Sound: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI only)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for apple placement (0 picks one from the clock)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Length, "length", c.Length, "starting snake length")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
	fs.BoolVar(&c.Autopilot, "autopilot", c.Autopilot, "steer automatically when no key is pressed")
}

// SimConfig renders the board options as the key/value map sim factories read.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"rows":   strconv.Itoa(c.Rows),
		"cols":   strconv.Itoa(c.Cols),
		"length": strconv.Itoa(c.Length),
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
}
