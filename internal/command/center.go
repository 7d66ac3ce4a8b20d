package command

import (
	"errors"
	"fmt"

	"github.com/dshills/centerview/internal/center"
	"github.com/dshills/centerview/internal/window"
)

// Action names for centering.
const (
	ActionToggle         = "center.toggle"
	ActionRecenter       = "center.recenter"
	ActionSetMarginLeft  = "center.setMarginLeft"
	ActionSetMarginRight = "center.setMarginRight"
	ActionIncMarginLeft  = "center.incMarginLeft"
	ActionIncMarginRight = "center.incMarginRight"
	ActionDecMarginLeft  = "center.decMarginLeft"
	ActionDecMarginRight = "center.decMarginRight"
	ActionStatus         = "center.status"
)

// StatusKey is the Data key holding the JSON document of center.status.
const StatusKey = "json"

// Centering is the controller surface the handler drives.
type Centering interface {
	Toggle(id window.ID) (bool, error)
	Recenter(id window.ID) (center.Result, error)
	AdjustMargin(id window.ID, side center.Side, adj center.Adjust) (int, error)
	Eligibility(id window.ID) (center.Reason, error)
	Active(id window.ID) bool
	Absolute() bool
	Status() []center.Status
}

// Focuser reports the focused viewport.
type Focuser interface {
	Focused() window.ID
}

// CenterHandler implements the center namespace.
type CenterHandler struct {
	ctrl  Centering
	focus Focuser
}

// NewCenterHandler creates a handler over ctrl. Actions without a viewport
// target focus.Focused().
func NewCenterHandler(ctrl Centering, focus Focuser) *CenterHandler {
	return &CenterHandler{ctrl: ctrl, focus: focus}
}

// Namespace returns the center namespace.
func (h *CenterHandler) Namespace() string {
	return "center"
}

// CanHandle returns true if this handler can process the action.
func (h *CenterHandler) CanHandle(name string) bool {
	switch name {
	case ActionToggle, ActionRecenter,
		ActionSetMarginLeft, ActionSetMarginRight,
		ActionIncMarginLeft, ActionIncMarginRight,
		ActionDecMarginLeft, ActionDecMarginRight,
		ActionStatus:
		return true
	}
	return false
}

// HandleAction processes a centering action.
func (h *CenterHandler) HandleAction(action Action) Result {
	id := action.Viewport
	if id == "" {
		id = h.focus.Focused()
	}

	switch action.Name {
	case ActionToggle:
		return h.toggle(id)
	case ActionRecenter:
		return h.recenter(id)
	case ActionSetMarginLeft, ActionSetMarginRight:
		if action.Value == nil {
			return Errorf("%s: value required", action.Name)
		}
		return h.adjust(id, sideOf(action.Name), center.Set(*action.Value))
	case ActionIncMarginLeft, ActionIncMarginRight:
		return h.adjust(id, sideOf(action.Name), center.Increment(action.count()))
	case ActionDecMarginLeft, ActionDecMarginRight:
		return h.adjust(id, sideOf(action.Name), center.Decrement(action.count()))
	case ActionStatus:
		return h.status(id)
	default:
		return Errorf("unknown center action: %s", action.Name)
	}
}

func sideOf(name string) center.Side {
	switch name {
	case ActionSetMarginRight, ActionIncMarginRight, ActionDecMarginRight:
		return center.Right
	}
	return center.Left
}

func (h *CenterHandler) toggle(id window.ID) Result {
	on, err := h.ctrl.Toggle(id)
	if err != nil {
		return Error(err)
	}
	if !on {
		return SuccessWithMessage("centering off").WithRedraw()
	}
	msg := "centering on"
	if reason, err := h.ctrl.Eligibility(id); err == nil && reason != center.ReasonNone {
		msg += " (waiting: " + reason.String() + ")"
	}
	return SuccessWithMessage(msg).WithRedraw()
}

func (h *CenterHandler) recenter(id window.ID) Result {
	res, err := h.ctrl.Recenter(id)
	if err != nil {
		return Error(err)
	}
	if !res.Applied {
		return NoOpWithMessage("recenter skipped: " + res.Reason.String()).WithRedraw()
	}
	return SuccessWithMessage("recentered " + res.Margins.String()).WithRedraw()
}

func (h *CenterHandler) adjust(id window.ID, side center.Side, adj center.Adjust) Result {
	n, err := h.ctrl.AdjustMargin(id, side, adj)
	if errors.Is(err, center.ErrNotActive) {
		return NoOpWithMessage("centering not active")
	}
	if err != nil {
		return Error(err)
	}
	msg := fmt.Sprintf("%s margin offset %d", side, n)
	if h.ctrl.Absolute() {
		msg += " (no effect with absolute centering)"
	}
	return SuccessWithMessage(msg).WithData("offset", n)
}

func (h *CenterHandler) status(id window.ID) Result {
	doc, err := StatusJSON(id, h.ctrl.Active(id), h.ctrl.Status())
	if err != nil {
		return Error(err)
	}
	return SuccessWithData(StatusKey, doc)
}
