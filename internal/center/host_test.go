package center

import (
	"fmt"

	"github.com/dshills/centerview/internal/config"
	"github.com/dshills/centerview/internal/window"
)

// fakeView is one viewport on a fakeHost.
type fakeView struct {
	width   int
	left    int
	content string
	margins window.Margins
}

// fakeHost is an in-memory Host whose layout tests edit directly.
type fakeHost struct {
	frame int
	order []window.ID
	views map[window.ID]*fakeView
	subs  map[window.ID][]func(window.LayoutChanged)

	subscribeCalls int
	setCalls       int
	setErr         error
}

func newFakeHost(frame int) *fakeHost {
	return &fakeHost{
		frame: frame,
		views: make(map[window.ID]*fakeView),
		subs:  make(map[window.ID][]func(window.LayoutChanged)),
	}
}

func (h *fakeHost) add(id window.ID, v fakeView) *fakeView {
	h.order = append(h.order, id)
	h.views[id] = &v
	return h.views[id]
}

func (h *fakeHost) remove(id window.ID) {
	delete(h.views, id)
	for i, o := range h.order {
		if o == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// fire delivers a layout change to the subscribers of every affected
// viewport, the way the window manager does.
func (h *fakeHost) fire(ev window.LayoutChanged) {
	for id, fns := range h.subs {
		if !ev.Affects(id) {
			continue
		}
		for _, fn := range fns {
			if fn != nil {
				fn(ev)
			}
		}
	}
}

func (h *fakeHost) view(id window.ID) (*fakeView, error) {
	v, ok := h.views[id]
	if !ok {
		return nil, fmt.Errorf("fake %s: %w", id, window.ErrNotFound)
	}
	return v, nil
}

func (h *fakeHost) Margins(id window.ID) (window.Margins, error) {
	v, err := h.view(id)
	if err != nil {
		return window.Margins{}, err
	}
	return v.margins.Clone(), nil
}

func (h *fakeHost) SetMargins(id window.ID, m window.Margins) error {
	h.setCalls++
	if h.setErr != nil {
		return h.setErr
	}
	v, err := h.view(id)
	if err != nil {
		return err
	}
	v.margins = m.Clone()
	return nil
}

func (h *fakeHost) ViewportWidth(id window.ID) (int, error) {
	v, err := h.view(id)
	if err != nil {
		return 0, err
	}
	return v.width, nil
}

func (h *fakeHost) FrameWidth(id window.ID) (int, error) {
	if _, err := h.view(id); err != nil {
		return 0, err
	}
	return h.frame, nil
}

func (h *fakeHost) ViewportLeft(id window.ID) (int, error) {
	v, err := h.view(id)
	if err != nil {
		return 0, err
	}
	return v.left, nil
}

func (h *fakeHost) Visible() []window.ID {
	return append([]window.ID(nil), h.order...)
}

func (h *fakeHost) Content(id window.ID) (string, error) {
	v, err := h.view(id)
	if err != nil {
		return "", err
	}
	return v.content, nil
}

func (h *fakeHost) SubscribeLayout(id window.ID, fn func(window.LayoutChanged)) (func(), error) {
	h.subscribeCalls++
	h.subs[id] = append(h.subs[id], fn)
	idx := len(h.subs[id]) - 1
	return func() {
		fns := h.subs[id]
		if idx < len(fns) && fns[idx] != nil {
			fns[idx] = nil
		}
		for _, f := range fns {
			if f != nil {
				return
			}
		}
		delete(h.subs, id)
	}, nil
}

func (h *fakeHost) subscribers(id window.ID) int {
	n := 0
	for _, f := range h.subs[id] {
		if f != nil {
			n++
		}
	}
	return n
}

// staticConfig is a ConfigSource tests mutate between calls.
type staticConfig struct {
	c config.Centering
}

func (s *staticConfig) Centering() config.Centering { return s.c.Clone() }

// relativeConfig centers to 100 columns in relative mode with no
// single-window rule.
func relativeConfig() *staticConfig {
	c := config.DefaultCentering()
	c.MinSize = 0
	c.MaxSize = 100
	c.SingleWindowOnly = false
	return &staticConfig{c: c}
}
