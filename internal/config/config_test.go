package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Center.MinSize != 40 {
		t.Errorf("MinSize = %d, want 40", cfg.Center.MinSize)
	}
	if cfg.Center.MaxSize != 0 {
		t.Errorf("MaxSize = %d, want 0", cfg.Center.MaxSize)
	}
	if cfg.Center.MaxScale != 0.75 {
		t.Errorf("MaxScale = %v, want 0.75", cfg.Center.MaxScale)
	}
	if cfg.Center.MarginLeftFactor != 1.0 || cfg.Center.MarginRightFactor != 1.0 {
		t.Errorf("factors = %v/%v, want 1.0/1.0", cfg.Center.MarginLeftFactor, cfg.Center.MarginRightFactor)
	}
	if !cfg.Center.SingleWindowOnly {
		t.Error("SingleWindowOnly should default to true")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(Default()) = %v", err)
	}
}

func TestCentering_IsIgnored(t *testing.T) {
	c := Centering{IgnoredContent: []string{"*help*", "*messages*"}}

	if !c.IsIgnored("*help*") {
		t.Error("*help* should be ignored")
	}
	if c.IsIgnored("main.go") {
		t.Error("main.go should not be ignored")
	}
}

func TestCentering_CloneIsolation(t *testing.T) {
	c := Centering{IgnoredContent: []string{"a"}}
	clone := c.Clone()
	clone.IgnoredContent[0] = "b"

	if c.IgnoredContent[0] != "a" {
		t.Errorf("original mutated through clone: %q", c.IgnoredContent[0])
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := Default()
	exists, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("LoadFile should return false for missing file")
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config changed (-want +got):\n%s", diff)
	}
}

func TestLoadFile_PartialTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[center]
max_size = 100
use_absolute_centering = true
ignored_content = ["*help*"]
`)

	cfg := Default()
	exists, err := LoadFile(path, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("LoadFile should return true for existing file")
	}

	want := Default()
	want.Center.MaxSize = 100
	want.Center.UseAbsoluteCentering = true
	want.Center.IgnoredContent = []string{"*help*"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_ExplicitZeroOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[center]
min_size = 0
single_window_only = false
`)

	cfg := Default()
	if _, err := LoadFile(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Center.MinSize != 0 {
		t.Errorf("MinSize = %d, want 0", cfg.Center.MinSize)
	}
	if cfg.Center.SingleWindowOnly {
		t.Error("SingleWindowOnly should be false")
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
center:
  min_size: 60
  margin_left_offset: 2
  margin_right_factor: 0.5
log:
  level: debug
`)

	cfg := Default()
	if _, err := LoadFile(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Center.MinSize != 60 {
		t.Errorf("MinSize = %d, want 60", cfg.Center.MinSize)
	}
	if cfg.Center.MarginLeftOffset != 2 {
		t.Errorf("MarginLeftOffset = %d, want 2", cfg.Center.MarginLeftOffset)
	}
	if cfg.Center.MarginRightFactor != 0.5 {
		t.Errorf("MarginRightFactor = %v, want 0.5", cfg.Center.MarginRightFactor)
	}
	if cfg.Center.MaxScale != 0.75 {
		t.Errorf("MaxScale changed to %v", cfg.Center.MaxScale)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadFile_ParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[center\nmax_size = ")

	cfg := Default()
	exists, err := LoadFile(path, &cfg)
	if !exists {
		t.Error("exists should be true for a file that failed to parse")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.ini", "x=1")

	cfg := Default()
	_, err := LoadFile(path, &cfg)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CENTERVIEW_MAX_SIZE", "90")
	t.Setenv("CENTERVIEW_ABSOLUTE", "true")
	t.Setenv("CENTERVIEW_MARGIN_LEFT_FACTOR", "0.5")
	t.Setenv("CENTERVIEW_IGNORED_CONTENT", "*help*, ,*scratch*")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Center.MaxSize != 90 {
		t.Errorf("MaxSize = %d, want 90", cfg.Center.MaxSize)
	}
	if !cfg.Center.UseAbsoluteCentering {
		t.Error("UseAbsoluteCentering should be true")
	}
	if cfg.Center.MarginLeftFactor != 0.5 {
		t.Errorf("MarginLeftFactor = %v, want 0.5", cfg.Center.MarginLeftFactor)
	}
	if diff := cmp.Diff([]string{"*help*", "*scratch*"}, cfg.Center.IgnoredContent); diff != "" {
		t.Errorf("IgnoredContent mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnv_BadValue(t *testing.T) {
	t.Setenv("CENTERVIEW_MIN_SIZE", "wide")

	cfg := Default()
	err := ApplyEnv(&cfg)
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("err = %v, want ErrInvalidValue", err)
	}
	if cfg.Center.MinSize != 40 {
		t.Errorf("MinSize = %d, want unchanged 40", cfg.Center.MinSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		bad    bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero scale without max size", func(c *Config) { c.Center.MaxScale = 0 }, true},
		{"zero scale with max size", func(c *Config) { c.Center.MaxScale = 0; c.Center.MaxSize = 80 }, false},
		{"scale above one", func(c *Config) { c.Center.MaxScale = 1.5 }, true},
		{"min above max", func(c *Config) { c.Center.MinSize = 120; c.Center.MaxSize = 80 }, true},
		{"negative factor", func(c *Config) { c.Center.MarginRightFactor = -1 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.bad && !errors.Is(err, ErrInvalidValue) {
				t.Errorf("Validate() = %v, want ErrInvalidValue", err)
			}
			if !tt.bad && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	cfg := Default()
	cfg.Center.MaxSize = 88

	data, err := Encode(cfg)
	if err != nil {
		t.Fatal(err)
	}

	got := Default()
	if err := Merge(&got, "<encoded>", FormatTOML, data); err != nil {
		t.Fatalf("Merge(encoded) error: %v", err)
	}
	if got.Center.MaxSize != 88 {
		t.Errorf("MaxSize = %d, want 88", got.Center.MaxSize)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	want := filepath.Join(tmp, "centerview")
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
	if got := DefaultPath(); got != filepath.Join(want, "config.toml") {
		t.Errorf("DefaultPath() = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		input string
		want  string
	}{
		{"~/logs/cv.log", filepath.Join(home, "logs/cv.log")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExpandHome(tt.input); got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
