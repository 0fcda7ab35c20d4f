package app

import (
	"flag"
	"runtime"

	"ca-survey/internal/automaton"
	"ca-survey/internal/batch"
	"ca-survey/internal/classify"
)

// Config represents the command-line parameters for the application.
type Config struct {
	States    int
	Radius    int
	Code      string
	Condition string
	MaxSteps  int

	AllConditions bool
	RandomLength  int
	Seed          int64
	Workers       int

	Chart   bool
	Details bool
	Plain   bool

	View  bool
	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	ac := automaton.DefaultConfig()
	return &Config{
		States:    ac.States,
		Radius:    ac.Radius,
		Code:      ac.Code,
		Condition: ac.Condition,
		MaxSteps:  ac.MaxSteps,
		Seed:      42,
		Workers:   runtime.NumCPU(),
		Scale:     2,
		TPS:       120,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.States, "k", c.States, "number of states")
	fs.IntVar(&c.Radius, "r", c.Radius, "neighborhood radius")
	fs.StringVar(&c.Code, "code", c.Code, "rule code")
	fs.StringVar(&c.Condition, "ic", c.Condition, "initial condition as a digit string")
	fs.IntVar(&c.MaxSteps, "steps", c.MaxSteps, "number of steps to run")
	fs.BoolVar(&c.AllConditions, "all-ics", c.AllConditions, "classify an elementary rule over every simple initial condition")
	fs.IntVar(&c.RandomLength, "random-ic", c.RandomLength, "draw a random initial condition of this length instead of -ic")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -random-ic")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel runs for -all-ics")
	fs.BoolVar(&c.Chart, "chart", c.Chart, "plot the active width per step")
	fs.BoolVar(&c.Details, "details", c.Details, "list the run parameters and measurements")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "disable terminal styling")
	fs.BoolVar(&c.View, "view", c.View, "open the spacetime diagram in a window (needs -tags ebiten)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "rows revealed per second in the viewer")
}

// Automaton returns the engine configuration for a single run.
func (c *Config) Automaton() automaton.Config {
	return automaton.Config{
		States:    c.States,
		Radius:    c.Radius,
		Code:      c.Code,
		Condition: c.Condition,
		MaxSteps:  c.MaxSteps,
	}
}

// Batch returns the configuration for -all-ics runs.
func (c *Config) Batch() batch.Config {
	return batch.Config{
		MaxSteps:  c.MaxSteps,
		MaxLength: batch.DefaultConfig().MaxLength,
		Workers:   c.Workers,
		Classify:  classify.DefaultConfig(),
	}
}
