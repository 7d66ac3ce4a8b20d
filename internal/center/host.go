package center

import (
	"github.com/dshills/centerview/internal/config"
	"github.com/dshills/centerview/internal/window"
)

// MarginAccess reads and writes a viewport's display margins.
type MarginAccess interface {
	Margins(id window.ID) (window.Margins, error)
	SetMargins(id window.ID, m window.Margins) error
}

// Host is the window system the Controller centers viewports in.
// Lookups for an unknown ID return an error matching window.ErrNotFound.
type Host interface {
	MarginAccess

	ViewportWidth(id window.ID) (int, error)
	FrameWidth(id window.ID) (int, error)
	ViewportLeft(id window.ID) (int, error)

	// Visible returns every viewport currently on screen.
	Visible() []window.ID

	// Content identifies what a viewport is displaying.
	Content(id window.ID) (string, error)

	// SubscribeLayout calls fn for each layout change affecting id until
	// the returned function is called.
	SubscribeLayout(id window.ID, fn func(window.LayoutChanged)) (func(), error)
}

// ConfigSource supplies the live centering configuration. It is read
// again for every computation.
type ConfigSource interface {
	Centering() config.Centering
}
