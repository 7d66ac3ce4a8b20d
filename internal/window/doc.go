// Package window models the editor frame and the viewports laid out inside it.
//
// A Manager owns a frame of fixed height and variable width holding one or
// more viewports arranged side by side, separated by one-column borders.
// Each viewport displays named content and carries a pair of optional
// display margins. Every change to the geometry or content of the layout is
// published on the event bus as a LayoutChanged event so that interested
// components (centering, rendering) can react before the next frame.
//
// Viewports are identified by opaque IDs. Callers must not hold on to
// anything but the ID: a viewport can be closed at any time, after which
// every accessor returns ErrNotFound.
package window
