package window

import (
	"errors"
	"strconv"

	"github.com/dshills/centerview/internal/event"
)

// Event topics published by the Manager.
const (
	// TopicLayoutChanged is published when viewport geometry or content changes.
	TopicLayoutChanged event.Topic = "window.layout.changed"

	// TopicFocusChanged is published when the focused viewport changes.
	TopicFocusChanged event.Topic = "window.focus.changed"
)

// Errors returned by the Manager.
var (
	// ErrNotFound indicates the ID does not name a live viewport.
	ErrNotFound = errors.New("viewport not found")

	// ErrLastViewport indicates an attempt to close the only viewport.
	ErrLastViewport = errors.New("cannot close last viewport")

	// ErrTooNarrow indicates the frame cannot fit another viewport.
	ErrTooNarrow = errors.New("frame too narrow to split")
)

// ID identifies a viewport.
type ID string

// Margins holds a viewport's display margins. A nil side means no margin
// has been set, which renders as zero.
type Margins struct {
	Left  *int
	Right *int
}

// Cols returns a pointer to n, for building Margins literals.
func Cols(n int) *int {
	return &n
}

// Width returns the left and right margins with unset sides as zero.
func (m Margins) Width() (left, right int) {
	if m.Left != nil {
		left = *m.Left
	}
	if m.Right != nil {
		right = *m.Right
	}
	return left, right
}

// Equal reports whether both margins hold the same values, treating two
// unset sides as equal.
func (m Margins) Equal(other Margins) bool {
	return equalSide(m.Left, other.Left) && equalSide(m.Right, other.Right)
}

// Clone returns a copy that does not share storage with m.
func (m Margins) Clone() Margins {
	var out Margins
	if m.Left != nil {
		out.Left = Cols(*m.Left)
	}
	if m.Right != nil {
		out.Right = Cols(*m.Right)
	}
	return out
}

// String formats the margins as "left/right" with "-" for unset sides.
func (m Margins) String() string {
	return sideString(m.Left) + "/" + sideString(m.Right)
}

func equalSide(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sideString(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

// Info is a snapshot of one viewport's state.
type Info struct {
	ID      ID
	Content string
	Left    int
	Width   int
	Margins Margins
	Focused bool
}

// LayoutChanged is the payload of TopicLayoutChanged.
type LayoutChanged struct {
	// Viewports lists the affected viewports. Empty means all of them.
	Viewports []ID

	// FrameWidth and FrameHeight are the frame size after the change.
	FrameWidth  int
	FrameHeight int

	// Reason names the operation that caused the change.
	Reason string
}

// Affects reports whether the event concerns id.
func (e LayoutChanged) Affects(id ID) bool {
	if len(e.Viewports) == 0 {
		return true
	}
	for _, v := range e.Viewports {
		if v == id {
			return true
		}
	}
	return false
}

// FocusChanged is the payload of TopicFocusChanged.
type FocusChanged struct {
	Previous ID
	Current  ID
}
