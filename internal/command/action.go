package command

import (
	"strings"

	"github.com/dshills/centerview/internal/window"
)

// Action is a request to run a named command.
type Action struct {
	// Name is the namespaced action name, e.g. "center.toggle".
	Name string

	// Viewport is the target viewport. Empty means the focused one.
	Viewport window.ID

	// Count is the repeat count or step size. Zero means 1.
	Count int

	// Value is the argument of set-style actions.
	Value *int

	// Text is the argument of text-taking actions.
	Text string
}

// Namespace returns the part of the name before the first dot.
func (a Action) Namespace() string {
	ns, _, ok := strings.Cut(a.Name, ".")
	if !ok {
		return ""
	}
	return ns
}

func (a Action) count() int {
	if a.Count <= 0 {
		return 1
	}
	return a.Count
}

// IntValue returns a pointer to n for Action.Value.
func IntValue(n int) *int {
	return &n
}
