package command

import (
	"testing"

	"github.com/dshills/centerview/internal/center"
	"github.com/dshills/centerview/internal/config"
	"github.com/dshills/centerview/internal/event"
	"github.com/dshills/centerview/internal/window"
)

func newLiveDispatcher(t *testing.T, width int) (*Dispatcher, *window.Manager, *center.Controller) {
	t.Helper()
	cfg := config.Default()
	cfg.Center.MaxSize = 100
	wm := window.NewManager(event.NewBus(), nil, width, 30, "main.go")
	ctrl := center.NewController(wm, config.NewStore(cfg))

	d := NewDispatcher(nil)
	d.Register(NewCenterHandler(ctrl, wm))
	d.Register(NewWindowHandler(wm))
	return d, wm, ctrl
}

func TestWindowHandler_SplitClose(t *testing.T) {
	d, wm, _ := newLiveDispatcher(t, 81)

	if res := d.Dispatch(Action{Name: ActionSplit}); !res.IsOK() {
		t.Fatalf("split = %+v", res)
	}
	wins := wm.Windows()
	if len(wins) != 2 || wins[1].Content != "main.go" {
		t.Fatalf("windows = %+v", wins)
	}

	if res := d.Dispatch(Action{Name: ActionSplit, Text: "notes.md"}); !res.IsOK() {
		t.Fatalf("split with content = %+v", res)
	}
	if c, _ := wm.Content(wm.Focused()); c != "notes.md" {
		t.Errorf("focused content = %q", c)
	}

	d.Dispatch(Action{Name: ActionClose})
	d.Dispatch(Action{Name: ActionClose})
	res := d.Dispatch(Action{Name: ActionClose})
	if res.Status != StatusNoOp || res.Message != "cannot close last viewport" {
		t.Errorf("close last = %+v", res)
	}
}

func TestWindowHandler_FocusNextSingle(t *testing.T) {
	d, wm, _ := newLiveDispatcher(t, 81)
	first := wm.Focused()

	res := d.Dispatch(Action{Name: ActionFocusNext})
	if res.Status != StatusNoOp || res.Redraw {
		t.Errorf("focusNext = %+v, want no-op", res)
	}
	if wm.Focused() != first {
		t.Error("focus should not move")
	}
}

func TestWindowHandler_TooNarrow(t *testing.T) {
	d, _, _ := newLiveDispatcher(t, 2)
	res := d.Dispatch(Action{Name: ActionSplit})
	if res.Status != StatusNoOp {
		t.Errorf("split = %+v, want no-op", res)
	}
}

func TestWindowHandler_FocusAndEdit(t *testing.T) {
	d, wm, _ := newLiveDispatcher(t, 81)
	first := wm.Focused()
	d.Dispatch(Action{Name: ActionSplit})

	d.Dispatch(Action{Name: ActionFocusNext})
	if wm.Focused() != first {
		t.Error("focusNext should wrap to the first viewport")
	}

	if res := d.Dispatch(Action{Name: ActionEdit}); !res.IsError() {
		t.Errorf("edit without content = %+v", res)
	}
	d.Dispatch(Action{Name: ActionEdit, Text: "other.go"})
	if c, _ := wm.Content(first); c != "other.go" {
		t.Errorf("content = %q", c)
	}
}

func TestCommands_EndToEnd(t *testing.T) {
	d, wm, ctrl := newLiveDispatcher(t, 120)
	id := wm.Focused()

	if res := d.Dispatch(Action{Name: ActionToggle}); !res.IsOK() {
		t.Fatalf("toggle = %+v", res)
	}
	m, _ := wm.Margins(id)
	if m.String() != "10/10" {
		t.Fatalf("margins = %s, want 10/10", m)
	}

	d.Dispatch(Action{Name: ActionIncMarginLeft, Count: 5})
	if m, _ := wm.Margins(id); m.String() != "10/10" {
		t.Errorf("adjust must not re-apply, margins = %s", m)
	}

	res := d.Dispatch(Action{Name: ActionRecenter})
	if res.Message != "recentered 15/10" {
		t.Errorf("recenter message = %q", res.Message)
	}

	d.Dispatch(Action{Name: ActionSplit})
	if m, _ := wm.Margins(id); m.String() != "-/-" {
		t.Errorf("margins after split = %s, want -/-", m)
	}
	if !ctrl.Active(id) {
		t.Error("split should not deactivate")
	}
}
