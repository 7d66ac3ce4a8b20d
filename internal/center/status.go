package center

import (
	"github.com/dshills/centerview/internal/window"
)

// Status describes one active viewport.
type Status struct {
	ID          window.ID
	Content     string
	LeftOffset  int
	RightOffset int
	Margins     window.Margins
	Original    window.Margins

	// Reason is ReasonNone when the viewport is currently eligible.
	Reason Reason
}

// Status reports on every active viewport that still resolves.
func (c *Controller) Status() []Status {
	cfg := c.cfg.Centering()
	out := make([]Status, 0, len(c.states))
	for _, id := range c.ActiveIDs() {
		st := c.states[id]
		margins, err := c.host.Margins(id)
		if err != nil {
			continue
		}
		reason, err := c.eligibility(id, cfg)
		if err != nil {
			continue
		}
		adj := c.adjustment(st, cfg)
		out = append(out, Status{
			ID:          id,
			Content:     st.content,
			LeftOffset:  adj.LeftOffset,
			RightOffset: adj.RightOffset,
			Margins:     margins,
			Original:    st.original.Clone(),
			Reason:      reason,
		})
	}
	return out
}
