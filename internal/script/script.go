package script

import (
	"fmt"

	"github.com/kaku-editor/kaku/internal/buffer"
	"github.com/kaku-editor/kaku/internal/command"
	"github.com/kaku-editor/kaku/internal/engine"
	"github.com/kaku-editor/kaku/internal/key"
	"github.com/kaku-editor/kaku/internal/mode"
	"github.com/kaku-editor/kaku/internal/view"
	"github.com/tidwall/gjson"
	lua "github.com/yuin/gopher-lua"
)

// Script owns a single gopher-lua state and exposes the Editor global to it,
// wired against one Engine. A Script is not safe for concurrent use from
// multiple goroutines; callers invoke it the way the teacher's Executor
// serializes LState access, through the engine's own exclusive borrow.
type Script struct {
	L      *lua.LState
	engine *engine.Engine
}

// New creates a Script bound to e, with the Editor global already installed.
// Only safe libraries are opened — no io, os, debug, or package — matching
// the teacher's sandboxing posture for user-supplied configuration.
func New(e *engine.Engine) *Script {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	s := &Script{L: L, engine: e}
	s.registerRefTypes()
	s.installEditor()
	return s
}

// LoadString compiles and runs src under name (used in tracebacks),
// satisfying engine.ScriptRunner so reload-config and cmd/kaku's startup
// sequence can drive it without engine importing this package.
func (s *Script) LoadString(src, name string) error {
	fn, err := s.L.LoadString(src)
	if err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}
	s.L.Push(fn)
	if err := s.L.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}
	return nil
}

// Close releases the underlying Lua state.
func (s *Script) Close() {
	s.L.Close()
}

// installEditor builds the Editor global table described by spec §4.11.
func (s *Script) installEditor() {
	editor := s.L.NewTable()
	s.L.SetFuncs(editor, map[string]lua.LGFunction{
		"register_command":       s.registerCommand,
		"bind":                   s.bind,
		"exec":                   s.exec,
		"open_file":              s.openFile,
		"create_buffer":          s.createBuffer,
		"create_view_for_buffer": s.createViewForBuffer,
		"set_active_view":        s.setActiveView,
		"get_active_view":        s.getActiveView,
		"get_views":              s.getViews,
	})
	s.L.SetGlobal("Editor", editor)
}

// registerCommand implements Editor.register_command(name, description,
// function). Registering a name that already exists is an error, per
// spec §4.11.
func (s *Script) registerCommand(L *lua.LState) int {
	name := L.CheckString(1)
	desc := L.CheckString(2)
	fn := L.CheckFunction(3)

	action := command.Variadic(func(args []command.Arg) error {
		b := newBridge(s.L)
		s.L.Push(fn)
		for _, a := range args {
			s.L.Push(b.toLuaValue(argToGo(a)))
		}
		if err := s.L.PCall(len(args), 0, nil); err != nil {
			return fmt.Errorf("script: command %q: %w", name, err)
		}
		return nil
	})

	err := s.engine.Commands.Register(command.Command{Name: name, Description: desc, Action: action})
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	return 0
}

// argToGo converts a command.Arg to the Go value bridge.toLuaValue expects.
func argToGo(a command.Arg) interface{} {
	switch a.Kind {
	case command.ArgInteger:
		return int64(a.Int)
	case command.ArgBool:
		return a.Bool
	default:
		return a.Str
	}
}

// bind implements Editor.bind(key_sequence_string [, mode_name],
// command_string, ...); the 2-arg form (sequence, command) defaults to
// Normal mode.
func (s *Script) bind(L *lua.LState) int {
	seqStr := L.CheckString(1)

	top := L.GetTop()
	modeName := string(mode.Normal)
	cmdsStart := 2
	if top >= 3 {
		modeName = L.CheckString(2)
		cmdsStart = 3
	}

	var commands []string
	for i := cmdsStart; i <= top; i++ {
		commands = append(commands, L.CheckString(i))
	}
	if len(commands) == 0 {
		L.RaiseError("script: bind requires at least one command string")
		return 0
	}

	seq, err := key.ParseKeySequence(seqStr)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	if err := s.engine.Keybinds.Bind(mode.Parse(modeName), seq, commands); err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	return 0
}

// exec implements Editor.exec(command_string). When the command is one of
// the JSON-producing meta built-ins (binds, commands, list-buffers,
// show-kill-ring), the transient buffer it opens is parsed with gjson and
// returned as a Lua table (exec's only return value), so scripts can introspect the
// result instead of having to re-read the transient buffer's text.
func (s *Script) exec(L *lua.LState) int {
	cmdLine := L.CheckString(1)
	before := s.engine.ActiveView

	if err := s.engine.ExecuteCommand(cmdLine); err != nil {
		L.RaiseError("%s", err)
		return 0
	}

	if s.engine.ActiveView == before {
		return 0
	}
	v, ok := s.engine.Views[s.engine.ActiveView]
	if !ok {
		return 0
	}
	buf := s.engine.BufferFor(v)
	if !isTransientJSONBuffer(buf.Name) {
		return 0
	}

	parsed := gjson.Parse(buf.Text())
	if !parsed.IsArray() {
		return 0
	}
	b := newBridge(s.L)
	t := s.L.NewTable()
	i := 1
	parsed.ForEach(func(_, entry gjson.Result) bool {
		t.RawSetInt(i, b.toLuaValue(gjsonToGo(entry)))
		i++
		return true
	})
	L.Push(t)
	return 1
}

// isTransientJSONBuffer reports whether name is one of the meta commands'
// transient buffer names (see engine.openTransient's callers).
func isTransientJSONBuffer(name string) bool {
	switch name {
	case "*binds*", "*commands*", "*buffers*", "*kill-ring*":
		return true
	default:
		return false
	}
}

// gjsonToGo converts a gjson.Result to a plain Go value bridge.toLuaValue
// understands.
func gjsonToGo(r gjson.Result) interface{} {
	switch {
	case r.IsArray():
		var out []interface{}
		r.ForEach(func(_, v gjson.Result) bool {
			out = append(out, gjsonToGo(v))
			return true
		})
		return out
	case r.IsObject():
		out := make(map[string]interface{})
		r.ForEach(func(k, v gjson.Result) bool {
			out[k.String()] = gjsonToGo(v)
			return true
		})
		return out
	case r.Type == gjson.String:
		return r.Str
	case r.Type == gjson.Number:
		return r.Num
	case r.Type == gjson.True, r.Type == gjson.False:
		return r.Bool()
	default:
		return nil
	}
}

// openFile implements Editor.open_file(path) -> BufferRef.
func (s *Script) openFile(L *lua.LState) int {
	path := L.CheckString(1)
	buf, err := buffer.Open(path)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	s.engine.Buffers[buf.ID] = buf
	L.Push(s.newBufferRef(buf.ID))
	return 1
}

// createBuffer implements Editor.create_buffer() -> BufferRef.
func (s *Script) createBuffer(L *lua.LState) int {
	buf := buffer.New()
	s.engine.Buffers[buf.ID] = buf
	L.Push(s.newBufferRef(buf.ID))
	return 1
}

// createViewForBuffer implements Editor.create_view_for_buffer(BufferRef) ->
// ViewRef.
func (s *Script) createViewForBuffer(L *lua.LState) int {
	bufID, err := checkBufferRef(L, 1)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	buf, ok := s.engine.Buffers[bufID]
	if !ok {
		L.RaiseError("script: buffer %d does not exist", bufID)
		return 0
	}
	v := view.New(bufID)
	buf.IncrementViewCount()
	s.engine.Views[v.ID] = v
	L.Push(s.newViewRef(v.ID))
	return 1
}

// setActiveView implements Editor.set_active_view(ViewRef).
func (s *Script) setActiveView(L *lua.LState) int {
	viewID, err := checkViewRef(L, 1)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	if _, ok := s.engine.Views[viewID]; !ok {
		L.RaiseError("script: view %d does not exist", viewID)
		return 0
	}
	s.engine.ActiveView = viewID
	return 0
}

// getActiveView implements Editor.get_active_view() -> ViewRef.
func (s *Script) getActiveView(L *lua.LState) int {
	L.Push(s.newViewRef(s.engine.ActiveView))
	return 1
}

// getViews implements Editor.get_views() -> [ViewRef].
func (s *Script) getViews(L *lua.LState) int {
	t := L.NewTable()
	i := 1
	for viewID := range s.engine.Views {
		t.RawSetInt(i, s.newViewRef(viewID))
		i++
	}
	L.Push(t)
	return 1
}
