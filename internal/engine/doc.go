// Package engine implements the process-wide editor state owner: the
// buffer and view tables, active view, key queue, current mode, command
// registry, keybindings, kill ring, error log, and viewport size. It
// dispatches terminal events, runs the key-sequence state machine, and
// executes commands, mediating between every other component.
package engine
