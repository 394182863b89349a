package engine

import (
	"fmt"
	"sort"

	"github.com/kaku-editor/kaku/internal/buffer"
	"github.com/kaku-editor/kaku/internal/key"
	"github.com/kaku-editor/kaku/internal/mode"
	"github.com/kaku-editor/kaku/internal/view"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// cmdQuit implements spec §4.8 quit.
func (e *Engine) cmdQuit() error {
	e.ShouldQuit = true
	return nil
}

// cmdEnterMode implements spec §4.8 enter-mode <name>.
func (e *Engine) cmdEnterMode(name string) error {
	e.Mode = mode.Parse(name)
	return nil
}

// cmdEnterCommandMode implements spec §4.8 enter-command-mode.
func (e *Engine) cmdEnterCommandMode() error {
	e.CommandLine.Focus()
	return nil
}

// cmdReloadConfig implements spec §4.8 reload-config: clears commands and
// bindings, repopulates built-ins, then re-executes the cached config
// script(s).
func (e *Engine) cmdReloadConfig() error {
	e.Commands = newRegistryWithBuiltins(e)
	e.Keybinds = newKeymap()

	if e.Script == nil {
		return nil
	}
	for _, src := range e.ConfigSources {
		if err := e.Script.LoadString(src.Text, src.Path); err != nil {
			return fmt.Errorf("engine: reload-config: %s: %w", src.Path, err)
		}
	}
	return nil
}

// cmdWrite implements spec §4.8 write [path].
func (e *Engine) cmdWrite(path string) error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)
	if path != "" {
		buf.Rebind(path)
	}
	return buf.Save()
}

// cmdCloseBuffer implements spec §4.8 close-buffer.
func (e *Engine) cmdCloseBuffer() error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)

	delete(e.Views, v.ID)
	if buf.DecrementViewCount() == 0 {
		delete(e.Buffers, buf.ID)
	}

	for id := range e.Views {
		e.ActiveView = id
		return nil
	}

	scratch := buffer.New()
	e.Buffers[scratch.ID] = scratch
	nv := view.New(scratch.ID)
	scratch.IncrementViewCount()
	e.Views[nv.ID] = nv
	e.ActiveView = nv.ID
	return nil
}

// cmdBinds implements spec §4.8 binds: opens a transient buffer listing
// every resolved keybinding as pretty-printed JSON.
func (e *Engine) cmdBinds() error {
	entries := e.Keybinds.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Mode != entries[j].Mode {
			return entries[i].Mode < entries[j].Mode
		}
		return key.SerializeSequence(entries[i].Sequence) < key.SerializeSequence(entries[j].Sequence)
	})

	doc := "[]"
	for i, be := range entries {
		doc, _ = sjson.Set(doc, fmt.Sprintf("%d.mode", i), string(be.Mode))
		doc, _ = sjson.Set(doc, fmt.Sprintf("%d.sequence", i), key.SerializeSequence(be.Sequence))
		doc, _ = sjson.Set(doc, fmt.Sprintf("%d.commands", i), be.Commands)
	}
	return e.openTransient("*binds*", string(pretty.Pretty([]byte(doc))))
}

// cmdCommands implements spec §4.8 commands.
func (e *Engine) cmdCommands() error {
	names := e.Commands.List()
	doc := "[]"
	for i, name := range names {
		cmd, _ := e.Commands.Get(name)
		doc, _ = sjson.Set(doc, fmt.Sprintf("%d.name", i), cmd.Name)
		doc, _ = sjson.Set(doc, fmt.Sprintf("%d.description", i), cmd.Description)
	}
	return e.openTransient("*commands*", string(pretty.Pretty([]byte(doc))))
}

// cmdListBuffers implements spec §4.8 list-buffers.
func (e *Engine) cmdListBuffers() error {
	doc := "[]"
	i := 0
	for _, buf := range e.Buffers {
		doc, _ = sjson.Set(doc, fmt.Sprintf("%d.id", i), buf.ID)
		doc, _ = sjson.Set(doc, fmt.Sprintf("%d.name", i), buf.Name)
		doc, _ = sjson.Set(doc, fmt.Sprintf("%d.view_count", i), buf.ViewCount())
		i++
	}
	return e.openTransient("*buffers*", string(pretty.Pretty([]byte(doc))))
}

// cmdShowKillRing implements spec §4.8 show-kill-ring.
func (e *Engine) cmdShowKillRing() error {
	entry, ok := e.KillRing.Get()
	doc := "[]"
	if ok {
		for i, text := range entry.Text {
			doc, _ = sjson.Set(doc, fmt.Sprintf("%d", i), text)
		}
	}
	return e.openTransient("*kill-ring*", string(pretty.Pretty([]byte(doc))))
}

// openTransient creates a new unbacked buffer named name with contents text
// and switches the active view to a fresh view on it.
func (e *Engine) openTransient(name, text string) error {
	buf := buffer.FromText(name, text, buffer.Backing{})
	e.Buffers[buf.ID] = buf
	v := view.New(buf.ID)
	buf.IncrementViewCount()
	e.Views[v.ID] = v
	e.ActiveView = v.ID
	return nil
}
