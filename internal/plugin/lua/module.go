package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/centerview/internal/command"
	"github.com/dshills/centerview/internal/config"
)

// Dispatcher runs commands on behalf of scripts.
type Dispatcher interface {
	Dispatch(action command.Action) command.Result
}

// ConfigSource supplies the live centering settings for center.config().
type ConfigSource interface {
	Centering() config.Centering
}

// Install registers the center and window modules in s.
func Install(s *State, d Dispatcher, cfg ConfigSource) {
	m := &module{d: d, cfg: cfg}
	s.RegisterModule("center", map[string]lua.LGFunction{
		"toggle":           m.run(command.ActionToggle),
		"recenter":         m.run(command.ActionRecenter),
		"set_margin_left":  m.set(command.ActionSetMarginLeft),
		"set_margin_right": m.set(command.ActionSetMarginRight),
		"inc_margin_left":  m.step(command.ActionIncMarginLeft),
		"inc_margin_right": m.step(command.ActionIncMarginRight),
		"dec_margin_left":  m.step(command.ActionDecMarginLeft),
		"dec_margin_right": m.step(command.ActionDecMarginRight),
		"status":           m.status,
		"config":           m.config,
	})
	s.RegisterModule("window", map[string]lua.LGFunction{
		"split":      m.text(command.ActionSplit, false),
		"close":      m.run(command.ActionClose),
		"focus_next": m.run(command.ActionFocusNext),
		"edit":       m.text(command.ActionEdit, true),
	})
}

type module struct {
	d   Dispatcher
	cfg ConfigSource
}

// push converts a command result into Lua return values: an error is
// raised, a no-op returns nil and its message, success returns value (or
// true) and the message.
func push(L *lua.LState, res command.Result, value lua.LValue) int {
	switch {
	case res.IsError():
		L.RaiseError("%s", res.Text())
		return 0
	case !res.IsOK():
		L.Push(lua.LNil)
		L.Push(lua.LString(res.Message))
		return 2
	}
	if value == nil {
		value = lua.LTrue
	}
	L.Push(value)
	L.Push(lua.LString(res.Message))
	return 2
}

func (m *module) run(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		return push(L, m.d.Dispatch(command.Action{Name: name}), nil)
	}
}

// set(n) -> offset, message
func (m *module) set(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.CheckInt(1)
		res := m.d.Dispatch(command.Action{Name: name, Value: command.IntValue(n)})
		return push(L, res, offsetValue(res))
	}
}

// step([n]) -> offset, message
func (m *module) step(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		if n < 1 {
			L.ArgError(1, "step must be positive")
			return 0
		}
		res := m.d.Dispatch(command.Action{Name: name, Count: n})
		return push(L, res, offsetValue(res))
	}
}

func (m *module) text(name string, required bool) lua.LGFunction {
	return func(L *lua.LState) int {
		var s string
		if required {
			s = L.CheckString(1)
		} else {
			s = L.OptString(1, "")
		}
		return push(L, m.d.Dispatch(command.Action{Name: name, Text: s}), nil)
	}
}

// status() -> json
func (m *module) status(L *lua.LState) int {
	res := m.d.Dispatch(command.Action{Name: command.ActionStatus})
	if res.IsError() {
		L.RaiseError("%s", res.Text())
		return 0
	}
	doc, _ := res.GetData(command.StatusKey)
	s, _ := doc.(string)
	L.Push(lua.LString(s))
	return 1
}

// config() -> table
func (m *module) config(L *lua.LState) int {
	L.Push(centeringTable(L, m.cfg.Centering()))
	return 1
}

func offsetValue(res command.Result) lua.LValue {
	v, ok := res.GetData("offset")
	if !ok {
		return nil
	}
	n, ok := v.(int)
	if !ok {
		return nil
	}
	return lua.LNumber(n)
}

func centeringTable(L *lua.LState, c config.Centering) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "min_size", lua.LNumber(c.MinSize))
	L.SetField(t, "max_size", lua.LNumber(c.MaxSize))
	L.SetField(t, "max_scale", lua.LNumber(c.MaxScale))
	L.SetField(t, "single_window_only", lua.LBool(c.SingleWindowOnly))
	L.SetField(t, "use_absolute_centering", lua.LBool(c.UseAbsoluteCentering))
	L.SetField(t, "margin_left_offset", lua.LNumber(c.MarginLeftOffset))
	L.SetField(t, "margin_right_offset", lua.LNumber(c.MarginRightOffset))
	L.SetField(t, "margin_left_factor", lua.LNumber(c.MarginLeftFactor))
	L.SetField(t, "margin_right_factor", lua.LNumber(c.MarginRightFactor))

	ignored := L.NewTable()
	for _, id := range c.IgnoredContent {
		ignored.Append(lua.LString(id))
	}
	L.SetField(t, "ignored_content", ignored)
	return t
}
