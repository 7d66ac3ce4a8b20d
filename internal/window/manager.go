package window

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/centerview/internal/event"
)

// viewport is the Manager's internal record for one viewport.
type viewport struct {
	id      ID
	content string
	left    int
	width   int
	margins Margins
}

// Manager owns the frame and its viewports.
//
// All mutating methods publish their effect on the bus synchronously
// before returning.
type Manager struct {
	mu sync.RWMutex

	bus *event.Bus
	log *zap.Logger

	width  int
	height int

	views   []*viewport
	focused ID
}

// NewManager creates a frame of the given size holding a single viewport
// that displays content. Sizes below 1 are clamped to 1.
func NewManager(bus *event.Bus, log *zap.Logger, width, height int, content string) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		bus:    bus,
		log:    log,
		width:  max(width, 1),
		height: max(height, 1),
	}
	v := &viewport{id: newID(), content: content}
	m.views = []*viewport{v}
	m.focused = v.id
	m.relayout()
	return m
}

func newID() ID {
	return ID(uuid.NewString())
}

// Size returns the frame size.
func (m *Manager) Size() (width, height int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.width, m.height
}

// Resize changes the frame size and rebalances viewport widths.
// During live resizes some terminals momentarily report 0 (or even
// negative) dimensions; those are clamped rather than propagated.
func (m *Manager) Resize(width, height int) {
	m.mu.Lock()
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.relayout()
	m.mu.Unlock()

	m.publishLayout("resize", nil)
}

// Split inserts a new viewport displaying content to the right of id and
// rebalances widths. The new viewport takes focus.
func (m *Manager) Split(id ID, content string) (ID, error) {
	m.mu.Lock()
	idx := m.indexOf(id)
	if idx < 0 {
		m.mu.Unlock()
		return "", fmt.Errorf("split %s: %w", id, ErrNotFound)
	}
	// Every viewport needs at least one column plus a separator.
	if len(m.views)+1 > (m.width+1)/2 {
		m.mu.Unlock()
		return "", ErrTooNarrow
	}

	v := &viewport{id: newID(), content: content}
	m.views = append(m.views, nil)
	copy(m.views[idx+2:], m.views[idx+1:])
	m.views[idx+1] = v
	prev := m.focused
	m.focused = v.id
	m.relayout()
	m.mu.Unlock()

	m.log.Debug("viewport split", zap.String("from", string(id)), zap.String("new", string(v.id)))
	m.publishLayout("split", nil)
	m.publishFocus(prev, v.id)
	return v.id, nil
}

// Close removes a viewport. The last viewport cannot be closed.
func (m *Manager) Close(id ID) error {
	m.mu.Lock()
	idx := m.indexOf(id)
	if idx < 0 {
		m.mu.Unlock()
		return fmt.Errorf("close %s: %w", id, ErrNotFound)
	}
	if len(m.views) == 1 {
		m.mu.Unlock()
		return ErrLastViewport
	}

	m.views = append(m.views[:idx], m.views[idx+1:]...)
	prev := m.focused
	if m.focused == id {
		m.focused = m.views[min(idx, len(m.views)-1)].id
	}
	cur := m.focused
	m.relayout()
	m.mu.Unlock()

	m.log.Debug("viewport closed", zap.String("id", string(id)))
	m.publishLayout("close", nil)
	if prev != cur {
		m.publishFocus(prev, cur)
	}
	return nil
}

// SetContent changes what a viewport displays.
func (m *Manager) SetContent(id ID, content string) error {
	m.mu.Lock()
	v := m.find(id)
	if v == nil {
		m.mu.Unlock()
		return fmt.Errorf("set content %s: %w", id, ErrNotFound)
	}
	v.content = content
	m.mu.Unlock()

	// Content changes can alter other viewports' eligibility (ignore
	// lists), so every viewport is named as affected.
	m.publishLayout("content", nil)
	return nil
}

// Focus moves focus to id.
func (m *Manager) Focus(id ID) error {
	m.mu.Lock()
	if m.find(id) == nil {
		m.mu.Unlock()
		return fmt.Errorf("focus %s: %w", id, ErrNotFound)
	}
	prev := m.focused
	m.focused = id
	m.mu.Unlock()

	if prev != id {
		m.publishFocus(prev, id)
	}
	return nil
}

// FocusNext moves focus to the next viewport, wrapping around.
func (m *Manager) FocusNext() ID {
	m.mu.Lock()
	prev := m.focused
	idx := m.indexOf(prev)
	next := m.views[(idx+1)%len(m.views)].id
	m.focused = next
	m.mu.Unlock()

	if prev != next {
		m.publishFocus(prev, next)
	}
	return next
}

// Focused returns the focused viewport.
func (m *Manager) Focused() ID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.focused
}

// Windows returns a snapshot of every viewport, left to right.
func (m *Manager) Windows() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]Info, len(m.views))
	for i, v := range m.views {
		infos[i] = Info{
			ID:      v.id,
			Content: v.content,
			Left:    v.left,
			Width:   v.width,
			Margins: v.margins.Clone(),
			Focused: v.id == m.focused,
		}
	}
	return infos
}

// relayout assigns widths and offsets: separators take one column each and
// the remainder is split evenly, leftmost viewports absorbing the extra
// columns. Caller must hold the write lock.
func (m *Manager) relayout() {
	n := len(m.views)
	avail := m.width - (n - 1)
	base, extra := avail/n, avail%n

	left := 0
	for i, v := range m.views {
		w := base
		if i < extra {
			w++
		}
		// During extreme resizes the frame can get narrower than the
		// viewport count; never report a width below one column.
		v.width = max(w, 1)
		v.left = left
		left += v.width + 1
	}
}

func (m *Manager) indexOf(id ID) int {
	for i, v := range m.views {
		if v.id == id {
			return i
		}
	}
	return -1
}

func (m *Manager) find(id ID) *viewport {
	if i := m.indexOf(id); i >= 0 {
		return m.views[i]
	}
	return nil
}

func (m *Manager) publishLayout(reason string, ids []ID) {
	if m.bus == nil {
		return
	}
	w, h := m.Size()
	ev := LayoutChanged{Viewports: ids, FrameWidth: w, FrameHeight: h, Reason: reason}
	if err := m.bus.Publish(context.Background(), TopicLayoutChanged, ev); err != nil {
		m.log.Warn("layout change handlers failed", zap.String("reason", reason), zap.Error(err))
	}
}

func (m *Manager) publishFocus(prev, cur ID) {
	if m.bus == nil {
		return
	}
	ev := FocusChanged{Previous: prev, Current: cur}
	if err := m.bus.Publish(context.Background(), TopicFocusChanged, ev); err != nil {
		m.log.Warn("focus change handlers failed", zap.Error(err))
	}
}
