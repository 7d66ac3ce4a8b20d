package config

import "sync"

// Observer is called after the stored configuration changes.
type Observer func(cfg Config)

// Subscription represents an active observer subscription.
type Subscription struct {
	id    uint64
	store *Store
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.store != nil {
		s.store.unsubscribe(s.id)
	}
}

// Store holds the live configuration. It is safe for concurrent use; the
// file watcher writes it from its own goroutine while the UI loop reads it.
type Store struct {
	mu  sync.RWMutex
	cfg Config

	obsMu     sync.Mutex
	observers map[uint64]Observer
	nextID    uint64
}

// NewStore creates a store holding cfg.
func NewStore(cfg Config) *Store {
	return &Store{
		cfg:       cfg.Clone(),
		observers: make(map[uint64]Observer),
	}
}

// Get returns a copy of the current configuration.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Centering returns a copy of the current centering parameters.
func (s *Store) Centering() Centering {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Center.Clone()
}

// Set replaces the configuration and notifies observers.
func (s *Store) Set(cfg Config) {
	s.mu.Lock()
	s.cfg = cfg.Clone()
	s.mu.Unlock()
	s.notify(cfg)
}

// Update applies fn to a copy of the configuration, stores the result and
// notifies observers.
func (s *Store) Update(fn func(cfg *Config)) {
	s.mu.Lock()
	next := s.cfg.Clone()
	fn(&next)
	s.cfg = next
	s.mu.Unlock()
	s.notify(next)
}

// Subscribe registers an observer for configuration changes.
func (s *Store) Subscribe(fn Observer) *Subscription {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.nextID++
	s.observers[s.nextID] = fn
	return &Subscription{id: s.nextID, store: s}
}

func (s *Store) unsubscribe(id uint64) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	delete(s.observers, id)
}

func (s *Store) notify(cfg Config) {
	s.obsMu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range observers {
		fn(cfg.Clone())
	}
}
