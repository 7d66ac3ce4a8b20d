// Package lua lets user scripts drive centering through gopher-lua.
//
// A State is a sandboxed Lua runtime: only the base, table, string and
// math libraries are opened, and the file-loading builtins are removed.
// Scripts reach the editor through two global tables installed by
// Install:
//
//	center.toggle()              -- true, message
//	center.recenter()            -- applied, message
//	center.set_margin_left(n)    -- new offset
//	center.inc_margin_left([n])  -- new offset
//	center.dec_margin_right([n]) -- new offset
//	center.status()              -- JSON string
//	center.config()              -- table of live settings
//	window.split([content])
//	window.close()
//	window.focus_next()
//	window.edit(content)
//
// Every function acts on the focused viewport. A command that fails raises
// a Lua error; a command that had nothing to do returns nil and a message.
//
//	state, err := lua.NewState(lua.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//	lua.Install(state, dispatcher, store)
//	err = state.DoFile("init.lua")
package lua
