package center

import (
	"github.com/dshills/centerview/internal/config"
	"github.com/dshills/centerview/internal/window"
)

// Reason explains why a viewport was not centered.
type Reason string

// Skip reasons.
const (
	ReasonNone           Reason = ""
	ReasonTooSmallMin    Reason = "too small (min-size)"
	ReasonTooSmallMax    Reason = "too small (max-size)"
	ReasonNotSingle      Reason = "not a single viewport"
	ReasonNoRoom         Reason = "no room to center"
	ReasonInvalidConfig  Reason = "invalid sizing config"
	ReasonContentChanged Reason = "content changed since activation"
	ReasonInactive       Reason = "centering not active"
)

func (r Reason) String() string {
	if r == ReasonNone {
		return "eligible"
	}
	return string(r)
}

// Eligibility returns ReasonNone when id may be centered under the current
// configuration, or the first rule it fails.
func (c *Controller) Eligibility(id window.ID) (Reason, error) {
	return c.eligibility(id, c.cfg.Centering())
}

// IsEligible reports whether id may be centered. A viewport that cannot be
// resolved is not eligible.
func (c *Controller) IsEligible(id window.ID) bool {
	r, err := c.Eligibility(id)
	return err == nil && r == ReasonNone
}

// eligibility checks both size bounds independently, so a configuration
// with MinSize above MaxSize simply requires the larger of the two. Under
// SingleWindowOnly any other visible viewport whose content is not ignored
// disqualifies id.
func (c *Controller) eligibility(id window.ID, cfg config.Centering) (Reason, error) {
	width, err := c.host.ViewportWidth(id)
	if err != nil {
		return ReasonNone, hostError("eligibility", id, err)
	}
	if width < cfg.MinSize {
		return ReasonTooSmallMin, nil
	}
	if width < cfg.MaxSize {
		return ReasonTooSmallMax, nil
	}
	if cfg.SingleWindowOnly && c.hasCompanion(id, cfg) {
		return ReasonNotSingle, nil
	}
	return ReasonNone, nil
}

func (c *Controller) hasCompanion(id window.ID, cfg config.Centering) bool {
	for _, other := range c.host.Visible() {
		if other == id {
			continue
		}
		content, err := c.host.Content(other)
		if err != nil {
			// Closed between listing and lookup.
			continue
		}
		if !cfg.IsIgnored(content) {
			return true
		}
	}
	return false
}
