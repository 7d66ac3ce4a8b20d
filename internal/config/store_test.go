package config

import "testing"

func TestStore_GetReturnsCopy(t *testing.T) {
	cfg := Default()
	cfg.Center.IgnoredContent = []string{"*help*"}
	s := NewStore(cfg)

	got := s.Centering()
	got.IgnoredContent[0] = "changed"
	got.MaxSize = 999

	again := s.Centering()
	if again.IgnoredContent[0] != "*help*" {
		t.Errorf("store mutated through returned copy: %q", again.IgnoredContent[0])
	}
	if again.MaxSize != 0 {
		t.Errorf("MaxSize = %d, want 0", again.MaxSize)
	}
}

func TestStore_UpdateNotifies(t *testing.T) {
	s := NewStore(Default())

	var seen []int
	sub := s.Subscribe(func(c Config) {
		seen = append(seen, c.Center.MaxSize)
	})

	s.Update(func(c *Config) { c.Center.MaxSize = 80 })
	s.Set(Default())

	if len(seen) != 2 || seen[0] != 80 || seen[1] != 0 {
		t.Errorf("observer saw %v, want [80 0]", seen)
	}
	if got := s.Centering().MaxSize; got != 0 {
		t.Errorf("MaxSize = %d, want 0", got)
	}

	sub.Unsubscribe()
	s.Update(func(c *Config) { c.Center.MaxSize = 1 })
	if len(seen) != 2 {
		t.Errorf("observer called after Unsubscribe: %v", seen)
	}
}

func TestSubscription_NilSafe(t *testing.T) {
	var sub *Subscription
	sub.Unsubscribe()
}
