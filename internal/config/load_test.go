package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[center]\nmax_size = 90\nmin_size = 20\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPrefix+"MIN_SIZE", "30")

	cfg, found, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Error("found = false for an existing file")
	}
	if cfg.Center.MaxSize != 90 {
		t.Errorf("MaxSize = %d, want 90 from file", cfg.Center.MaxSize)
	}
	if cfg.Center.MinSize != 30 {
		t.Errorf("MinSize = %d, want 30 from environment", cfg.Center.MinSize)
	}
	if cfg.Center.MaxScale != DefaultCentering().MaxScale {
		t.Errorf("MaxScale = %g, want default", cfg.Center.MaxScale)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, found, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil || found {
		t.Fatalf("Load() = found %v, err %v", found, err)
	}
	if cfg.Center.MinSize != DefaultCentering().MinSize {
		t.Error("missing file should yield defaults")
	}
}

func TestLoad_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[center]\nmax_size = \"wide\"\n"), 0o644)

	var pe *ParseError
	if _, _, err := Load(path); !errors.As(err, &pe) {
		t.Errorf("Load(bad file) = %v, want *ParseError", err)
	}

	t.Setenv(EnvPrefix+"MAX_SCALE", "lots")
	if _, _, err := Load(""); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Load(bad env) = %v, want ErrInvalidValue", err)
	}
}
