package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "CENTERVIEW_"

// envSetters maps environment variable names (without prefix) to the
// setting they override.
var envSetters = map[string]func(cfg *Config, value string) error{
	"MIN_SIZE":            intSetter(func(c *Config) *int { return &c.Center.MinSize }),
	"MAX_SIZE":            intSetter(func(c *Config) *int { return &c.Center.MaxSize }),
	"MAX_SCALE":           floatSetter(func(c *Config) *float64 { return &c.Center.MaxScale }),
	"SINGLE_WINDOW_ONLY":  boolSetter(func(c *Config) *bool { return &c.Center.SingleWindowOnly }),
	"ABSOLUTE":            boolSetter(func(c *Config) *bool { return &c.Center.UseAbsoluteCentering }),
	"MARGIN_LEFT_OFFSET":  intSetter(func(c *Config) *int { return &c.Center.MarginLeftOffset }),
	"MARGIN_RIGHT_OFFSET": intSetter(func(c *Config) *int { return &c.Center.MarginRightOffset }),
	"MARGIN_LEFT_FACTOR":  floatSetter(func(c *Config) *float64 { return &c.Center.MarginLeftFactor }),
	"MARGIN_RIGHT_FACTOR": floatSetter(func(c *Config) *float64 { return &c.Center.MarginRightFactor }),
	"IGNORED_CONTENT": func(c *Config, v string) error {
		c.Center.IgnoredContent = splitList(v)
		return nil
	},
	"LOG_LEVEL": func(c *Config, v string) error {
		c.Log.Level = v
		return nil
	},
	"LOG_FILE": func(c *Config, v string) error {
		c.Log.File = ExpandHome(v)
		return nil
	},
}

// ApplyEnv overlays CENTERVIEW_* environment variables onto cfg.
// Variables that fail to parse are skipped and reported together.
// Note: empty string values are treated as valid values, not as unset.
func ApplyEnv(cfg *Config) error {
	var errs []string
	for name, set := range envSetters {
		value, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			continue
		}
		if err := set(cfg, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s%s: %v", EnvPrefix, name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(errs, "; "))
	}
	return nil
}

func intSetter(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func floatSetter(field func(*Config) *float64) func(*Config, string) error {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
