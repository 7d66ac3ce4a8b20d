// Package command is the user-facing command surface.
//
// Key bindings and Lua scripts name actions such as "center.toggle" or
// "window.split"; the Dispatcher routes each Action to the handler for its
// namespace (the part before the first dot) and returns a Result the UI
// shows in its status line.
//
// Actions that name no viewport act on the focused one.
package command
