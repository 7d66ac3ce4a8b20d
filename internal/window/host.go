package window

import (
	"context"
	"fmt"

	"github.com/dshills/centerview/internal/event"
)

// The accessors below resolve the ID on every call; they are what the
// centering controller uses to sample fresh geometry.

// ViewportWidth returns the width of a viewport in columns.
func (m *Manager) ViewportWidth(id ID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v := m.find(id)
	if v == nil {
		return 0, fmt.Errorf("viewport width %s: %w", id, ErrNotFound)
	}
	return v.width, nil
}

// FrameWidth returns the width of the frame containing a viewport.
func (m *Manager) FrameWidth(id ID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.find(id) == nil {
		return 0, fmt.Errorf("frame width %s: %w", id, ErrNotFound)
	}
	return m.width, nil
}

// ViewportLeft returns the column at which a viewport starts in the frame.
func (m *Manager) ViewportLeft(id ID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v := m.find(id)
	if v == nil {
		return 0, fmt.Errorf("viewport left %s: %w", id, ErrNotFound)
	}
	return v.left, nil
}

// Visible returns the IDs of all viewports, left to right.
func (m *Manager) Visible() []ID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]ID, len(m.views))
	for i, v := range m.views {
		ids[i] = v.id
	}
	return ids
}

// Content returns the name of the content a viewport displays.
func (m *Manager) Content(id ID) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v := m.find(id)
	if v == nil {
		return "", fmt.Errorf("content %s: %w", id, ErrNotFound)
	}
	return v.content, nil
}

// Margins returns a viewport's current display margins.
func (m *Manager) Margins(id ID) (Margins, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v := m.find(id)
	if v == nil {
		return Margins{}, fmt.Errorf("margins %s: %w", id, ErrNotFound)
	}
	return v.margins.Clone(), nil
}

// SetMargins replaces a viewport's display margins. Margin changes do not
// alter the layout and publish nothing.
func (m *Manager) SetMargins(id ID, margins Margins) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.find(id)
	if v == nil {
		return fmt.Errorf("set margins %s: %w", id, ErrNotFound)
	}
	v.margins = margins.Clone()
	return nil
}

// SubscribeLayout calls fn for every layout change affecting id until the
// returned function is called.
func (m *Manager) SubscribeLayout(id ID, fn func(LayoutChanged)) (func(), error) {
	if m.bus == nil {
		return func() {}, nil
	}
	sub, err := m.bus.Subscribe(TopicLayoutChanged,
		func(ctx context.Context, ev event.Event) error {
			fn(ev.Payload.(LayoutChanged))
			return nil
		},
		event.WithPriority(event.PriorityCritical),
		event.WithFilter(func(ev event.Event) bool {
			lc, ok := ev.Payload.(LayoutChanged)
			return ok && lc.Affects(id)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("subscribe layout %s: %w", id, err)
	}
	return func() { _ = m.bus.Unsubscribe(sub) }, nil
}
