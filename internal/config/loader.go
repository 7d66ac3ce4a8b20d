package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging a settings file.
type fileConfig struct {
	Center *fileCentering `toml:"center" yaml:"center"`
	UI     *fileUI        `toml:"ui" yaml:"ui"`
	Log    *fileLog       `toml:"log" yaml:"log"`
	Plugin *filePlugin    `toml:"plugin" yaml:"plugin"`
}

type fileCentering struct {
	MinSize              *int      `toml:"min_size" yaml:"min_size"`
	MaxSize              *int      `toml:"max_size" yaml:"max_size"`
	MaxScale             *float64  `toml:"max_scale" yaml:"max_scale"`
	SingleWindowOnly     *bool     `toml:"single_window_only" yaml:"single_window_only"`
	UseAbsoluteCentering *bool     `toml:"use_absolute_centering" yaml:"use_absolute_centering"`
	IgnoredContent       *[]string `toml:"ignored_content" yaml:"ignored_content"`
	MarginLeftOffset     *int      `toml:"margin_left_offset" yaml:"margin_left_offset"`
	MarginRightOffset    *int      `toml:"margin_right_offset" yaml:"margin_right_offset"`
	MarginLeftFactor     *float64  `toml:"margin_left_factor" yaml:"margin_left_factor"`
	MarginRightFactor    *float64  `toml:"margin_right_factor" yaml:"margin_right_factor"`
}

type fileUI struct {
	MarginColor   *string `toml:"margin_color" yaml:"margin_color"`
	InitialBuffer *string `toml:"initial_buffer" yaml:"initial_buffer"`
	CenterOnStart *bool   `toml:"center_on_start" yaml:"center_on_start"`
}

type fileLog struct {
	Level *string `toml:"level" yaml:"level"`
	File  *string `toml:"file" yaml:"file"`
}

type filePlugin struct {
	InitScript *string `toml:"init_script" yaml:"init_script"`
}

// Format identifies a settings file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads the settings file at path and merges the keys it sets
// into cfg. Returns true if the file existed, false otherwise.
func LoadFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading config file %s: %w", path, err)
	}

	format, err := FormatFor(path)
	if err != nil {
		return true, err
	}
	if err := Merge(cfg, path, format, data); err != nil {
		return true, err
	}
	return true, nil
}

// Merge parses data in the given format and overlays its keys onto cfg.
// source is used in error messages only.
func Merge(cfg *Config, source string, format Format, data []byte) error {
	var fc fileConfig
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &fc)
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&fc)
	}
	if err != nil {
		return &ParseError{Path: source, Message: err.Error(), Err: err}
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if c := fc.Center; c != nil {
		setInt(&cfg.Center.MinSize, c.MinSize)
		setInt(&cfg.Center.MaxSize, c.MaxSize)
		setFloat(&cfg.Center.MaxScale, c.MaxScale)
		setBool(&cfg.Center.SingleWindowOnly, c.SingleWindowOnly)
		setBool(&cfg.Center.UseAbsoluteCentering, c.UseAbsoluteCentering)
		if c.IgnoredContent != nil {
			cfg.Center.IgnoredContent = append([]string(nil), (*c.IgnoredContent)...)
		}
		setInt(&cfg.Center.MarginLeftOffset, c.MarginLeftOffset)
		setInt(&cfg.Center.MarginRightOffset, c.MarginRightOffset)
		setFloat(&cfg.Center.MarginLeftFactor, c.MarginLeftFactor)
		setFloat(&cfg.Center.MarginRightFactor, c.MarginRightFactor)
	}
	if u := fc.UI; u != nil {
		setString(&cfg.UI.MarginColor, u.MarginColor)
		setString(&cfg.UI.InitialBuffer, u.InitialBuffer)
		setBool(&cfg.UI.CenterOnStart, u.CenterOnStart)
	}
	if l := fc.Log; l != nil {
		setString(&cfg.Log.Level, l.Level)
		if l.File != nil {
			cfg.Log.File = ExpandHome(*l.File)
		}
	}
	if p := fc.Plugin; p != nil && p.InitScript != nil {
		cfg.Plugin.InitScript = ExpandHome(*p.InitScript)
	}
}

// Encode writes cfg in TOML form.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
