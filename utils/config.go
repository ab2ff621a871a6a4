package utils

import (
	"encoding/json"
	"flag"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Run modes understood by the binary
const (
	ModeTerminal = "terminal"
	ModeHeadless = "headless"
	ModeWindow   = "window"
)

// Config holds the configuration for the game
type Config struct {
	Rows              int     `json:"rows"`
	Cols              int     `json:"cols"`
	TickIntervalMs    float64 `json:"tick_interval_ms"`
	Seed              int64   `json:"seed"`
	Probability       float64 `json:"probability"`
	ResetLeavesActive bool    `json:"reset_leaves_active"`
	MaxGenerations    int     `json:"max_generations"`
	StopOnCycle       bool    `json:"stop_on_cycle"`
	CycleWindow       int     `json:"cycle_window"`
	Pattern           string  `json:"pattern"`
	Mode              string  `json:"mode"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:              100,
		Cols:              100,
		TickIntervalMs:    16.67, // one animation frame; 50 also suits slower terminals
		Seed:              42,
		Probability:       0.3,
		ResetLeavesActive: false,
		MaxGenerations:    0,
		StopOnCycle:       false,
		CycleWindow:       5,
		Mode:              ModeTerminal,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override
// whatever was loaded from file
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Float64Var(&c.TickIntervalMs, "tick", c.TickIntervalMs, "milliseconds between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.Float64Var(&c.Probability, "probability", c.Probability, "chance of a cell starting alive, clamped to [0,1]")
	fs.BoolVar(&c.ResetLeavesActive, "reset-active", c.ResetLeavesActive, "leave the engine active after reset")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = until settled)")
	fs.BoolVar(&c.StopOnCycle, "stop-on-cycle", c.StopOnCycle, "stop when the board repeats a recent generation")
	fs.IntVar(&c.CycleWindow, "cycle-window", c.CycleWindow, "generations remembered for cycle detection")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "place a named pattern in the centre instead of randomizing")
	fs.StringVar(&c.Mode, "mode", c.Mode, "terminal, headless or window")
}

// Validate rejects configurations the engine or drivers cannot run
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("[Config.Validate] rows and cols must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.TickIntervalMs <= 0 {
		return errors.Errorf("[Config.Validate] tick_interval_ms must be positive, got %v", c.TickIntervalMs)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Config.Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.CycleWindow < 0 {
		return errors.Errorf("[Config.Validate] cycle_window must not be negative, got %d", c.CycleWindow)
	}
	switch c.Mode {
	case ModeTerminal, ModeHeadless, ModeWindow:
	default:
		return errors.Errorf("[Config.Validate] unknown mode %q", c.Mode)
	}
	return nil
}

// TickInterval returns the configured cadence as a duration
func (c Config) TickInterval() time.Duration {
	return time.Duration(math.Round(c.TickIntervalMs * float64(time.Millisecond)))
}
