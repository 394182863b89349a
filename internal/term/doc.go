// Package term is the terminal I/O external collaborator spec §1 names as
// out of core scope: raw mode, the alternate screen, the tcell event pump,
// and a minimal status-line render so the binary built on internal/engine is
// actually drivable from a real terminal. It translates tcell.EventKey into
// key.Event and feeds engine.Engine.Event; rendering beyond the status line
// and a plain text view stays deliberately unambitious.
package term
