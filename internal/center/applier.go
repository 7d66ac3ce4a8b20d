package center

import (
	"github.com/dshills/centerview/internal/center/geometry"
	"github.com/dshills/centerview/internal/window"
)

// Applier writes computed margins to viewports and puts saved ones back.
type Applier struct {
	host MarginAccess
}

// NewApplier creates an Applier over host.
func NewApplier(host MarginAccess) *Applier {
	return &Applier{host: host}
}

// Apply sets the viewport's margins to pair.
func (a *Applier) Apply(id window.ID, pair geometry.MarginPair) error {
	m := window.Margins{Left: window.Cols(pair.Left), Right: window.Cols(pair.Right)}
	return hostError("apply margins", id, a.host.SetMargins(id, m))
}

// Snapshot returns the viewport's current margins for a later Restore.
func (a *Applier) Snapshot(id window.ID) (window.Margins, error) {
	m, err := a.host.Margins(id)
	if err != nil {
		return window.Margins{}, hostError("snapshot margins", id, err)
	}
	return m.Clone(), nil
}

// Restore sets the viewport's margins back to a snapshot, including
// unset sides. Restoring the same snapshot twice is harmless.
func (a *Applier) Restore(id window.ID, saved window.Margins) error {
	return hostError("restore margins", id, a.host.SetMargins(id, saved.Clone()))
}
