package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/centerview/internal/command"
)

// binding maps a key to an action.
type binding struct {
	key    tcell.Key
	ch     rune
	action string
	help   string
}

// defaultBindings is the built-in keymap, in the order shown on the
// scratch page.
var defaultBindings = []binding{
	{key: tcell.KeyRune, ch: 'c', action: command.ActionToggle, help: "toggle centering"},
	{key: tcell.KeyRune, ch: 'r', action: command.ActionRecenter, help: "recenter"},
	{key: tcell.KeyRune, ch: '[', action: command.ActionDecMarginLeft, help: "narrow left margin"},
	{key: tcell.KeyRune, ch: ']', action: command.ActionIncMarginLeft, help: "widen left margin"},
	{key: tcell.KeyRune, ch: '{', action: command.ActionDecMarginRight, help: "narrow right margin"},
	{key: tcell.KeyRune, ch: '}', action: command.ActionIncMarginRight, help: "widen right margin"},
	{key: tcell.KeyRune, ch: 'v', action: command.ActionSplit, help: "split viewport"},
	{key: tcell.KeyRune, ch: 'x', action: command.ActionClose, help: "close viewport"},
	{key: tcell.KeyTab, action: command.ActionFocusNext, help: "focus next viewport"},
}

// keymap resolves key events to action names.
type keymap struct {
	runes map[rune]string
	keys  map[tcell.Key]string
}

func newKeymap(bindings []binding) keymap {
	km := keymap{
		runes: make(map[rune]string),
		keys:  make(map[tcell.Key]string),
	}
	for _, b := range bindings {
		if b.key == tcell.KeyRune {
			km.runes[b.ch] = b.action
		} else {
			km.keys[b.key] = b.action
		}
	}
	return km
}

// lookup returns the action bound to ev, if any.
func (km keymap) lookup(ev *tcell.EventKey) (string, bool) {
	if ev.Key() == tcell.KeyRune {
		name, ok := km.runes[ev.Rune()]
		return name, ok
	}
	name, ok := km.keys[ev.Key()]
	return name, ok
}

// isQuit reports whether ev ends the session.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func keyName(b binding) string {
	if b.key == tcell.KeyRune {
		return string(b.ch)
	}
	return tcell.KeyNames[b.key]
}
