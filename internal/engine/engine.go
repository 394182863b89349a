package engine

import (
	"fmt"
	"sync"

	"github.com/kaku-editor/kaku/internal/buffer"
	"github.com/kaku-editor/kaku/internal/command"
	"github.com/kaku-editor/kaku/internal/commandline"
	"github.com/kaku-editor/kaku/internal/id"
	"github.com/kaku-editor/kaku/internal/key"
	"github.com/kaku-editor/kaku/internal/keymap"
	"github.com/kaku-editor/kaku/internal/killring"
	"github.com/kaku-editor/kaku/internal/klog"
	"github.com/kaku-editor/kaku/internal/mode"
	"github.com/kaku-editor/kaku/internal/view"
)

// Engine is the process-wide singleton described in spec §3: it owns every
// buffer and view, the active view, the in-progress key queue, the current
// mode, the command-line, the command and keybinding registries, the kill
// ring, and the error log.
type Engine struct {
	borrowMu sync.Mutex
	borrowed bool

	ShouldQuit bool

	Buffers    map[id.BufferID]*buffer.Buffer
	Views      map[id.ViewID]*view.View
	ActiveView id.ViewID

	Keybinds *keymap.Keymap
	Commands *command.Registry

	KeyQueue    []key.Event
	Mode        mode.Name
	CommandLine commandline.CommandLine

	ErrorLog []string

	ViewportSize view.Size
	KillRing     *killring.Ring

	Log *klog.Logger

	Script        ScriptRunner
	ConfigSources []ConfigSource
}

// ConfigSource is one resolved, read config script, cached so reload-config
// can re-execute it without re-resolving search paths.
type ConfigSource struct {
	Path string
	Text string
}

// ScriptRunner is the slice of the scripting bridge reload-config needs.
// Defined here (not imported from internal/script) so engine never imports
// script — script imports engine's public surface instead.
type ScriptRunner interface {
	LoadString(src, name string) error
}

// SetScript wires the scripting bridge after it's built (script.New
// takes the Engine, so the Engine itself can't construct it in New).
func (e *Engine) SetScript(s ScriptRunner) {
	e.Script = s
}

// SetConfigSources caches the resolved config scripts for reload-config.
func (e *Engine) SetConfigSources(sources []ConfigSource) {
	e.ConfigSources = sources
}

// New creates the process-wide Engine with one empty "*scratch*" buffer and
// one view on it, set active, in Normal mode.
func New() *Engine {
	e := &Engine{
		Buffers:  make(map[id.BufferID]*buffer.Buffer),
		Views:    make(map[id.ViewID]*view.View),
		Keybinds: keymap.New(),
		Commands: command.NewRegistry(),
		Mode:     mode.Normal,
		KillRing: killring.New(),
		Log:      klog.Default(),
	}
	registerBuiltins(e)

	scratch := buffer.New()
	e.Buffers[scratch.ID] = scratch
	v := view.New(scratch.ID)
	scratch.IncrementViewCount()
	e.Views[v.ID] = v
	e.ActiveView = v.ID

	return e
}

// acquire enforces the single-mutable-borrow discipline spec §5 requires:
// a second acquire before a matching release is a reentrancy programming
// error, reported as a panic rather than left to deadlock or race.
func (e *Engine) acquire() {
	e.borrowMu.Lock()
	defer e.borrowMu.Unlock()
	if e.borrowed {
		panic("engine: reentrant exclusive borrow")
	}
	e.borrowed = true
}

func (e *Engine) release() {
	e.borrowMu.Lock()
	defer e.borrowMu.Unlock()
	e.borrowed = false
}

// ActiveViewPtr returns the currently active view.
func (e *Engine) ActiveViewPtr() *view.View {
	return e.Views[e.ActiveView]
}

// BufferFor returns the buffer a view targets.
func (e *Engine) BufferFor(v *view.View) *buffer.Buffer {
	return e.Buffers[v.Buffer]
}

// logError appends msg to the error log, per spec §7 ("only the last is
// shown" is a rendering concern for the frontend; the full history lives
// here for logs).
func (e *Engine) logError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.ErrorLog = append(e.ErrorLog, msg)
	e.Log.Error("%s", msg)
}

// LastError returns the most recent error log entry, or "" if none.
func (e *Engine) LastError() string {
	if len(e.ErrorLog) == 0 {
		return ""
	}
	return e.ErrorLog[len(e.ErrorLog)-1]
}
