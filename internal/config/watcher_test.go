package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[center]\nmax_size = 80\n")

	load := func() (Config, error) {
		cfg := Default()
		_, err := LoadFile(path, &cfg)
		return cfg, err
	}
	initial, err := load()
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(initial)

	reloaded := make(chan int, 4)
	store.Subscribe(func(c Config) {
		select {
		case reloaded <- c.Center.MaxSize:
		default:
		}
	})

	w, err := NewWatcher(path, store, load, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	w.Start()

	if err := os.WriteFile(path, []byte("[center]\nmax_size = 120\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// A truncating write can surface an intermediate empty file; wait for
	// the final content.
	deadline := time.After(2 * time.Second)
	for got := 0; got != 120; {
		select {
		case got = <-reloaded:
		case <-deadline:
			t.Fatalf("timed out waiting for reload, last MaxSize = %d", got)
		}
	}

	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error: %v", err)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "")
	store := NewStore(Default())

	calls := make(chan struct{}, 1)
	load := func() (Config, error) {
		select {
		case calls <- struct{}{}:
		default:
		}
		return Default(), nil
	}

	w, err := NewWatcher(path, store, load, WithDebounce(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-calls:
		t.Error("reload triggered by unrelated file")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_ReportsReloadErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "")
	store := NewStore(Default())

	errs := make(chan error, 4)
	load := func() (Config, error) {
		cfg := Default()
		_, err := LoadFile(path, &cfg)
		return cfg, err
	}

	w, err := NewWatcher(path, store, load,
		WithDebounce(time.Millisecond),
		WithErrorHandler(func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	w.Start()

	if err := os.WriteFile(path, []byte("[center\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errs:
		if err == nil {
			t.Error("expected a parse error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error")
	}

	if got := store.Centering(); got.MaxScale != 0.75 {
		t.Errorf("store changed after failed reload: %+v", got)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error: %v", err)
	}
}
