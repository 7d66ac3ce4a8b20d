// Package center keeps editor viewports horizontally centered.
//
// A Controller tracks which viewports have centering enabled. For each one
// it remembers the margins the viewport had before activation and, on every
// layout change, restores them before computing and applying fresh margins.
// Restoring first means applied margins never compound, and a viewport
// that stops being eligible returns to its original margins within the
// same event.
//
//	ctrl := center.NewController(windows, store, center.WithLogger(log))
//	if err := ctrl.Activate(id); err != nil {
//	    // *AlreadyActiveError or *ViewportGoneError
//	}
//
// The margin arithmetic lives in the geometry subpackage. The Controller
// reaches viewports only through the Host interface and resolves the
// viewport ID on every call, so a viewport closed behind its back surfaces
// as a *ViewportGoneError and is dropped.
//
// A Controller is not safe for concurrent use. It is driven from the UI
// event loop, and layout notifications are delivered synchronously on it.
package center
