package command

import (
	"errors"

	"github.com/dshills/centerview/internal/window"
)

// Action names for window operations.
const (
	ActionSplit     = "window.split"     // v
	ActionClose     = "window.close"     // x
	ActionFocusNext = "window.focusNext" // Tab
	ActionEdit      = "window.edit"      // Lua only
)

// WindowManager provides the window operations the handler drives.
type WindowManager interface {
	Focuser
	Split(id window.ID, content string) (window.ID, error)
	Close(id window.ID) error
	FocusNext() window.ID
	Content(id window.ID) (string, error)
	SetContent(id window.ID, content string) error
}

// WindowHandler implements the window namespace.
type WindowHandler struct {
	wm WindowManager
}

// NewWindowHandler creates a window handler.
func NewWindowHandler(wm WindowManager) *WindowHandler {
	return &WindowHandler{wm: wm}
}

// Namespace returns the window namespace.
func (h *WindowHandler) Namespace() string {
	return "window"
}

// CanHandle returns true if this handler can process the action.
func (h *WindowHandler) CanHandle(name string) bool {
	switch name {
	case ActionSplit, ActionClose, ActionFocusNext, ActionEdit:
		return true
	}
	return false
}

// HandleAction processes a window action.
func (h *WindowHandler) HandleAction(action Action) Result {
	id := action.Viewport
	if id == "" {
		id = h.wm.Focused()
	}

	switch action.Name {
	case ActionSplit:
		return h.split(id, action.Text)
	case ActionClose:
		return h.close(id)
	case ActionFocusNext:
		prev := h.wm.Focused()
		next := prev
		for i := 0; i < action.count(); i++ {
			next = h.wm.FocusNext()
		}
		if next == prev {
			return NoOp()
		}
		return Success().WithRedraw()
	case ActionEdit:
		if action.Text == "" {
			return Errorf("%s: content name required", action.Name)
		}
		if err := h.wm.SetContent(id, action.Text); err != nil {
			return Error(err)
		}
		return SuccessWithMessage("editing " + action.Text).WithRedraw()
	default:
		return Errorf("unknown window action: %s", action.Name)
	}
}

// split opens content beside id, or the same content when none is named.
func (h *WindowHandler) split(id window.ID, content string) Result {
	if content == "" {
		c, err := h.wm.Content(id)
		if err != nil {
			return Error(err)
		}
		content = c
	}
	if _, err := h.wm.Split(id, content); err != nil {
		if errors.Is(err, window.ErrTooNarrow) {
			return NoOpWithMessage("window too narrow to split")
		}
		return Error(err)
	}
	return Success().WithRedraw()
}

func (h *WindowHandler) close(id window.ID) Result {
	err := h.wm.Close(id)
	if errors.Is(err, window.ErrLastViewport) {
		return NoOpWithMessage("cannot close last viewport")
	}
	if err != nil {
		return Error(err)
	}
	return Success().WithRedraw()
}
