// Package config resolves acoroute's run configuration.
//
// Sources, lowest priority first: built-in defaults, a TOML file
// (acoroute.toml or --config), ACOROUTE_* environment variables, flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/antroute/aco"
	"github.com/katalvlaran/antroute/logging"
)

const (
	// DefaultFile is read from the working directory when present.
	DefaultFile = "acoroute.toml"

	// EnvPrefix selects environment overrides, e.g. ACOROUTE_ANTS=20 or
	// ACOROUTE_LOG_LEVEL=debug.
	EnvPrefix = "ACOROUTE_"

	// FileFlag names the flag pointing at an explicit config file.
	FileFlag = "config"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds everything a run needs.
type Config struct {
	Network         string  `koanf:"network"`
	Ants            int     `koanf:"ants"`
	Iterations      int     `koanf:"iterations"`
	Alpha           float64 `koanf:"alpha"`
	Beta            float64 `koanf:"beta"`
	Q               float64 `koanf:"q"`
	EvaporationRate float64 `koanf:"evaporation"`
	Decay           bool    `koanf:"decay"`
	Seed            int64   `koanf:"seed"`
	Workers         int     `koanf:"workers"`
	LogLevel        string  `koanf:"log-level"`
	LogFormat       string  `koanf:"log-format"`
}

// Defaults mirrors aco.DefaultOptions.
func Defaults() map[string]interface{} {
	d := aco.DefaultOptions()
	return map[string]interface{}{
		"network":     "",
		"ants":        d.Ants,
		"iterations":  d.Iterations,
		"alpha":       d.Alpha,
		"beta":        d.Beta,
		"q":           d.Q,
		"evaporation": d.EvaporationRate,
		"decay":       false,
		"seed":        int64(0),
		"workers":     0,
		"log-level":   "info",
		"log-format":  logging.FormatConsole,
	}
}

// RegisterFlags adds one flag per Config field, plus --config.
// Flag names equal the koanf keys so posflag can map them directly.
func RegisterFlags(fs *pflag.FlagSet) {
	d := aco.DefaultOptions()
	fs.String(FileFlag, "", "path to a TOML config file (default ./"+DefaultFile+" if present)")
	fs.String("network", "", "path to a TOML network description (built-in sample when empty)")
	fs.Int("ants", d.Ants, "ants per iteration")
	fs.Int("iterations", d.Iterations, "number of iterations")
	fs.Float64("alpha", d.Alpha, "pheromone exponent")
	fs.Float64("beta", d.Beta, "inverse-distance exponent")
	fs.Float64("q", d.Q, "deposit scale (each ant adds q/cost)")
	fs.Float64("evaporation", d.EvaporationRate, "evaporation rate in [0,1), used with --decay")
	fs.Bool("decay", false, "decay pheromone by the evaporation rate every iteration")
	fs.Int64("seed", 0, "random seed (0 selects the fixed default)")
	fs.Int("workers", 0, "run the ants of an iteration on this many goroutines (<=1: sequential)")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.String("log-format", logging.FormatConsole, "console or json")
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file. An explicit --config must exist; the default one is optional.
	path, explicit := DefaultFile, false
	if f != nil && f.Changed(FileFlag) {
		p, err := f.GetString(FileFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to read --%s: %w", FileFlag, err)
		}
		path, explicit = p, true
	}
	if _, err := os.Stat(path); err == nil || explicit {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	// 3. Environment variables: ACOROUTE_LOG_LEVEL -> log-level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Options converts the run parameters into optimizer options.
func (c *Config) Options() aco.Options {
	opts := aco.Options{
		Ants:            c.Ants,
		Iterations:      c.Iterations,
		Alpha:           c.Alpha,
		Beta:            c.Beta,
		Q:               c.Q,
		EvaporationRate: c.EvaporationRate,
		Evaporation:     aco.EvaporationOff,
		Seed:            c.Seed,
		Workers:         c.Workers,
	}
	if c.Decay {
		opts.Evaporation = aco.EvaporationDecay
	}

	return opts
}

// Validate checks the logging settings and the optimizer options.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log-format %q", ErrInvalid, c.LogFormat)
	}
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// mapProvider feeds a plain map to koanf.
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}
