// Package command implements the named-command registry, its typed
// argument vocabulary (CommandArg), the whitespace/quote/escape argument
// tokenizer, and the per-arity adapters that let a command register a
// closure over concretely-typed parameters instead of a raw []Arg.
//
// Commands never take an *engine.Engine parameter directly — that would
// create an import cycle (engine imports command for the Registry type).
// Instead, whatever owns the Engine (internal/engine) closes over it when
// building the Action closure it registers; this is exactly the "register
// closure-based actions" shape spec.md §4.7 asks for.
package command
