package config

import (
	"os"
	"path/filepath"
)

// Config is the complete centerview configuration.
type Config struct {
	Center Centering `toml:"center" yaml:"center"`
	UI     UI        `toml:"ui" yaml:"ui"`
	Log    Log       `toml:"log" yaml:"log"`
	Plugin Plugin    `toml:"plugin" yaml:"plugin"`
}

// Centering holds the tunable parameters of margin centering.
//
// MinSize and MaxSize are both eligibility thresholds on the viewport
// width. A non-positive MaxSize means the desired content width is derived
// from MaxScale instead.
type Centering struct {
	MinSize              int      `toml:"min_size" yaml:"min_size"`
	MaxSize              int      `toml:"max_size" yaml:"max_size"`
	MaxScale             float64  `toml:"max_scale" yaml:"max_scale"`
	SingleWindowOnly     bool     `toml:"single_window_only" yaml:"single_window_only"`
	UseAbsoluteCentering bool     `toml:"use_absolute_centering" yaml:"use_absolute_centering"`
	IgnoredContent       []string `toml:"ignored_content" yaml:"ignored_content"`
	MarginLeftOffset     int      `toml:"margin_left_offset" yaml:"margin_left_offset"`
	MarginRightOffset    int      `toml:"margin_right_offset" yaml:"margin_right_offset"`
	MarginLeftFactor     float64  `toml:"margin_left_factor" yaml:"margin_left_factor"`
	MarginRightFactor    float64  `toml:"margin_right_factor" yaml:"margin_right_factor"`
}

// UI configures the terminal front end.
type UI struct {
	MarginColor   string `toml:"margin_color" yaml:"margin_color"`
	InitialBuffer string `toml:"initial_buffer" yaml:"initial_buffer"`
	CenterOnStart bool   `toml:"center_on_start" yaml:"center_on_start"`
}

// Log configures logging output. An empty File disables logging.
type Log struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Plugin configures the Lua bridge.
type Plugin struct {
	InitScript string `toml:"init_script" yaml:"init_script"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Center: DefaultCentering(),
		UI: UI{
			MarginColor:   "#1e1e2e",
			InitialBuffer: "*scratch*",
			CenterOnStart: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultCentering returns the default centering parameters.
func DefaultCentering() Centering {
	return Centering{
		MinSize:           40,
		MaxSize:           0,
		MaxScale:          0.75,
		SingleWindowOnly:  true,
		MarginLeftFactor:  1.0,
		MarginRightFactor: 1.0,
	}
}

// IsIgnored reports whether content is in the ignore list.
func (c Centering) IsIgnored(content string) bool {
	for _, name := range c.IgnoredContent {
		if name == content {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with c.
func (c Centering) Clone() Centering {
	if c.IgnoredContent != nil {
		c.IgnoredContent = append([]string(nil), c.IgnoredContent...)
	}
	return c
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	c.Center = c.Center.Clone()
	return c
}

// ConfigDir returns the centerview config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "centerview")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "centerview")
}

// DefaultPath returns the default settings file path.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}
