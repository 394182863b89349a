// Package script implements the scripting bridge of spec §4.11: a Lua
// global named Editor backed by gopher-lua, giving user configuration and
// plugin scripts a way to register commands and bindings, execute command
// strings, and manipulate buffers and views through opaque BufferRef/ViewRef
// handles.
//
// The package depends on internal/engine for the operations it exposes, but
// engine never imports script — it only depends on the small ScriptRunner
// interface it declares itself. Script satisfies that interface.
package script
