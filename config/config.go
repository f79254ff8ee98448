// Package config loads host settings from an optional .env file, the process
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/plus3/hopper/sim"
)

const envPrefix = "HOPPER_"

// Config is everything a host needs to build a game.
type Config struct {
	Tuning sim.Tuning
	Width  int
	Height int
}

// Default returns the stock tuning in a 480x800 viewport.
func Default() Config {
	return Config{
		Tuning: sim.DefaultTuning(),
		Width:  480,
		Height: 800,
	}
}

// Viewport returns the configured viewport.
func (c Config) Viewport() sim.FixedViewport {
	return sim.FixedViewport{W: float64(c.Width), H: float64(c.Height)}
}

// Validate checks the viewport and the tuning.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", c.Width, c.Height))
	}
	if err := c.Tuning.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Load starts from Default and applies HOPPER_* variables. Variables set in
// the environment win over the same variable in the env files. Missing files
// are skipped.
func Load(files ...string) (Config, error) {
	values := map[string]string{}
	for _, file := range files {
		read, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", file, err)
		}
		for k, v := range read {
			values[k] = v
		}
	}

	cfg := Default()
	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			return v, true
		}
		v, ok := values[envPrefix+name]
		return v, ok
	}

	var errs []error
	for _, f := range cfg.fields() {
		raw, ok := lookup(f.env)
		if !ok {
			continue
		}
		if err := f.set(raw); err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, f.env, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RegisterFlags binds every setting to a flag, defaulting to the current
// value, so flags parsed afterwards override what Load produced.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	for _, f := range c.fields() {
		flags.Var(f, f.flag, f.usage)
	}
}

type field struct {
	env, flag, usage string
	isBool           bool
	get              func() string
	set              func(string) error
}

func (f field) IsBoolFlag() bool { return f.isBool }

func (f field) String() string {
	if f.get == nil {
		return ""
	}
	return f.get()
}

func (f field) Set(raw string) error { return f.set(raw) }

func floatField(env, name, usage string, p *float64) field {
	return field{
		env: env, flag: name, usage: usage,
		get: func() string { return strconv.FormatFloat(*p, 'g', -1, 64) },
		set: func(raw string) error {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return err
			}
			*p = v
			return nil
		},
	}
}

func intField(env, name, usage string, p *int) field {
	return field{
		env: env, flag: name, usage: usage,
		get: func() string { return strconv.Itoa(*p) },
		set: func(raw string) error {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return err
			}
			*p = v
			return nil
		},
	}
}

func (c *Config) fields() []field {
	t := &c.Tuning
	return []field{
		floatField("GRAVITY", "gravity", "downward acceleration in px/s²", &t.Gravity),
		floatField("JUMP_VELOCITY", "jump-velocity", "launch speed in px/s", &t.JumpVelocity),
		floatField("ACCELERATION", "acceleration", "horizontal input acceleration in px/s²", &t.Acceleration),
		floatField("MAX_SPEED", "max-speed", "horizontal speed cap in px/s", &t.MaxSpeed),
		{
			env: "AUTO_BOUNCE", flag: "auto-bounce", usage: "relaunch the player whenever it is grounded",
			isBool: true,
			get: func() string { return strconv.FormatBool(t.AutoBounce) },
			set: func(raw string) error {
				v, err := strconv.ParseBool(raw)
				if err != nil {
					return err
				}
				t.AutoBounce = v
				return nil
			},
		},
		{
			env: "SEED", flag: "seed", usage: "platform generator seed",
			get: func() string { return strconv.FormatUint(t.Seed, 10) },
			set: func(raw string) error {
				v, err := strconv.ParseUint(raw, 10, 64)
				if err != nil {
					return err
				}
				t.Seed = v
				return nil
			},
		},
		intField("WIDTH", "width", "viewport width in px", &c.Width),
		intField("HEIGHT", "height", "viewport height in px", &c.Height),
	}
}
