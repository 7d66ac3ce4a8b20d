package center

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/centerview/internal/center/geometry"
	"github.com/dshills/centerview/internal/config"
	"github.com/dshills/centerview/internal/window"
)

// Side selects a margin.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// floor is the smallest value a decrement leaves on this side.
func (s Side) floor() int {
	if s == Left {
		return 1
	}
	return 0
}

// AdjustKind is how an Adjust changes a margin offset.
type AdjustKind int

const (
	AdjustIncrement AdjustKind = iota
	AdjustDecrement
	AdjustSet
)

// Adjust is a change to a margin offset.
type Adjust struct {
	Kind AdjustKind
	N    int
}

// Increment raises the offset by n.
func Increment(n int) Adjust { return Adjust{Kind: AdjustIncrement, N: n} }

// Decrement lowers the offset by n, stopping at 1 for the left side and 0
// for the right.
func Decrement(n int) Adjust { return Adjust{Kind: AdjustDecrement, N: n} }

// Set replaces the offset with n.
func Set(n int) Adjust { return Adjust{Kind: AdjustSet, N: n} }

func (a Adjust) apply(cur int, side Side) int {
	switch a.Kind {
	case AdjustIncrement:
		return cur + a.N
	case AdjustDecrement:
		// An offset already below the floor is not raised by a decrement.
		return max(cur-a.N, min(cur, side.floor()))
	default:
		return a.N
	}
}

// AdjustMargin changes the margin offset for one side of an active
// viewport and returns the new value. The change is used by the next
// recenter; margins already applied are left alone.
func (c *Controller) AdjustMargin(id window.ID, side Side, adj Adjust) (int, error) {
	st, ok := c.states[id]
	if !ok {
		return 0, fmt.Errorf("adjust %s margin of %s: %w", side, id, ErrNotActive)
	}

	cfg := c.cfg.Centering()
	slot := &st.leftOffset
	cur := cfg.MarginLeftOffset
	if side == Right {
		slot = &st.rightOffset
		cur = cfg.MarginRightOffset
	}
	if *slot != nil {
		cur = **slot
	}

	next := adj.apply(cur, side)
	*slot = &next

	c.log.Debug("margin offset adjusted",
		zap.String("viewport", string(id)),
		zap.Stringer("side", side),
		zap.Int("from", cur),
		zap.Int("to", next))
	return next, nil
}

// Offsets returns the margin offsets the next recenter of id will use.
func (c *Controller) Offsets(id window.ID) (left, right int, err error) {
	st, ok := c.states[id]
	if !ok {
		return 0, 0, fmt.Errorf("offsets of %s: %w", id, ErrNotActive)
	}
	adj := c.adjustment(st, c.cfg.Centering())
	return adj.LeftOffset, adj.RightOffset, nil
}

// adjustment merges the viewport's offset overrides into the configured
// offsets and factors.
func (c *Controller) adjustment(st *viewportState, cfg config.Centering) geometry.Adjustment {
	adj := geometry.AdjustmentFrom(cfg)
	if st.leftOffset != nil {
		adj.LeftOffset = *st.leftOffset
	}
	if st.rightOffset != nil {
		adj.RightOffset = *st.rightOffset
	}
	return adj
}
