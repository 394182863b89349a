package engine

import (
	"github.com/kaku-editor/kaku/internal/command"
	"github.com/kaku-editor/kaku/internal/keymap"
)

// newKeymap returns a fresh, empty Keymap — used by reload-config (New
// calls keymap.New directly).
func newKeymap() *keymap.Keymap {
	return keymap.New()
}

// newRegistryWithBuiltins returns a fresh Registry with every spec §4.8
// built-in command registered against e.
func newRegistryWithBuiltins(e *Engine) *command.Registry {
	r := command.NewRegistry()
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	// Movement
	must(r.Register(command.Command{Name: "move-char-left", Action: command.Param0(func() error { return e.charLeft(false) })}))
	must(r.Register(command.Command{Name: "move-char-right", Action: command.Param0(func() error { return e.charRight(false) })}))
	must(r.Register(command.Command{Name: "move-char-up", Action: command.Param0(func() error { return e.charUp(false) })}))
	must(r.Register(command.Command{Name: "move-char-down", Action: command.Param0(func() error { return e.charDown(false) })}))
	must(r.Register(command.Command{Name: "goto-start-of-line", Action: command.Param0(func() error { return e.gotoStartOfLine(false) })}))
	must(r.Register(command.Command{Name: "goto-end-of-line", Action: command.Param0(func() error { return e.gotoEndOfLine(false) })}))
	must(r.Register(command.Command{Name: "goto-start", Action: command.Param0(func() error { return e.gotoStart(false) })}))
	must(r.Register(command.Command{Name: "goto-end", Action: command.Param0(func() error { return e.gotoEnd(false) })}))

	// extend- siblings (SPEC_FULL.md §3 supplement: every move- gets one)
	must(r.Register(command.Command{Name: "extend-char-left", Action: command.Param0(func() error { return e.charLeft(true) })}))
	must(r.Register(command.Command{Name: "extend-char-right", Action: command.Param0(func() error { return e.charRight(true) })}))
	must(r.Register(command.Command{Name: "extend-char-up", Action: command.Param0(func() error { return e.charUp(true) })}))
	must(r.Register(command.Command{Name: "extend-char-down", Action: command.Param0(func() error { return e.charDown(true) })}))
	must(r.Register(command.Command{Name: "extend-goto-start-of-line", Action: command.Param0(func() error { return e.gotoStartOfLine(true) })}))
	must(r.Register(command.Command{Name: "extend-goto-end-of-line", Action: command.Param0(func() error { return e.gotoEndOfLine(true) })}))
	must(r.Register(command.Command{Name: "extend-goto-start", Action: command.Param0(func() error { return e.gotoStart(true) })}))
	must(r.Register(command.Command{Name: "extend-goto-end", Action: command.Param0(func() error { return e.gotoEnd(true) })}))

	// Editing
	must(r.Register(command.Command{Name: "delete", Action: command.Param0(e.cmdDelete)}))
	must(r.Register(command.Command{Name: "backspace", Action: command.Param0(e.cmdBackspace)}))
	must(r.Register(command.Command{Name: "insert", Action: command.Param1(command.AsString, e.cmdInsert)}))
	must(r.Register(command.Command{Name: "copy-kill-ring", Action: command.Param0(e.cmdCopyKillRing)}))
	must(r.Register(command.Command{Name: "paste-kill-ring", Action: command.Param1(command.AsBool, e.cmdPasteKillRing)}))
	must(r.Register(command.Command{Name: "undo", Action: command.Param0(e.cmdUndo)}))
	must(r.Register(command.Command{Name: "redo", Action: command.Param0(e.cmdRedo)}))

	// Kill-ring rotation (SPEC_FULL.md §3 supplement: Open Question resolved
	// as "expose them")
	must(r.Register(command.Command{Name: "rotate-kill-ring-forward", Action: command.Param0(func() error {
		e.KillRing.RotateForward()
		return nil
	})}))
	must(r.Register(command.Command{Name: "rotate-kill-ring-backward", Action: command.Param0(func() error {
		e.KillRing.RotateBackward()
		return nil
	})}))

	// Multi-cursor (SPEC_FULL.md §3 supplement)
	must(r.Register(command.Command{Name: "split-selection", Action: command.Param0(e.cmdSplitSelection)}))
	must(r.Register(command.Command{Name: "add-selection-below", Action: command.Param0(e.cmdAddSelectionBelow)}))

	// Syntax tree navigation
	must(r.Register(command.Command{Name: "tree-sitter-in", Action: command.Param0(func() error { return e.cmdTreeSitterMove(treeIn) })}))
	must(r.Register(command.Command{Name: "tree-sitter-out", Action: command.Param0(func() error { return e.cmdTreeSitterMove(treeOut) })}))
	must(r.Register(command.Command{Name: "tree-sitter-next", Action: command.Param0(func() error { return e.cmdTreeSitterMove(treeNext) })}))
	must(r.Register(command.Command{Name: "tree-sitter-prev", Action: command.Param0(func() error { return e.cmdTreeSitterMove(treePrev) })}))

	// Meta
	must(r.Register(command.Command{Name: "quit", Action: command.Param0(e.cmdQuit)}))
	must(r.Register(command.Command{Name: "enter-mode", Action: command.Param1(command.AsString, e.cmdEnterMode)}))
	must(r.Register(command.Command{Name: "enter-command-mode", Action: command.Param0(e.cmdEnterCommandMode)}))
	must(r.Register(command.Command{Name: "reload-config", Action: command.Param0(e.cmdReloadConfig)}))
	must(r.Register(command.Command{Name: "write", Action: command.Variadic(func(args []command.Arg) error {
		path := ""
		if len(args) > 0 {
			p, err := command.AsString(args[0])
			if err != nil {
				return err
			}
			path = p
		}
		return e.cmdWrite(path)
	})}))
	must(r.Register(command.Command{Name: "close-buffer", Action: command.Param0(e.cmdCloseBuffer)}))
	must(r.Register(command.Command{Name: "binds", Action: command.Param0(e.cmdBinds)}))
	must(r.Register(command.Command{Name: "commands", Action: command.Param0(e.cmdCommands)}))
	must(r.Register(command.Command{Name: "list-buffers", Action: command.Param0(e.cmdListBuffers)}))
	must(r.Register(command.Command{Name: "show-kill-ring", Action: command.Param0(e.cmdShowKillRing)}))

	return r
}

func registerBuiltins(e *Engine) {
	e.Commands = newRegistryWithBuiltins(e)
}
