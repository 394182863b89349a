// Package kerr defines the error-kind sentinels shared by the engine,
// command registry, and scripting bridge.
package kerr

import "errors"

var (
	// ErrConfigNotFound is fatal at startup: none of the configured search
	// paths exist and none was given explicitly.
	ErrConfigNotFound = errors.New("config not found")

	// ErrConfigLoadError is recorded; the editor starts with built-ins only.
	ErrConfigLoadError = errors.New("config load error")

	// ErrCommandParseError reports an argument-parser failure.
	ErrCommandParseError = errors.New("command parse error")

	// ErrUnknownCommand reports a lookup miss in the command registry.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrCommandArgTypeMismatch reports an argument of the wrong kind.
	ErrCommandArgTypeMismatch = errors.New("command argument type mismatch")

	// ErrCommandExecutionError wraps any error a command's action returns.
	ErrCommandExecutionError = errors.New("command execution error")

	// ErrKeybindingConflict marks an attempt to shadow a Commands leaf with
	// a Group or vice versa — a programming error, not a runtime condition.
	ErrKeybindingConflict = errors.New("keybinding conflict")

	// ErrScriptError wraps an error propagated from the embedded interpreter.
	ErrScriptError = errors.New("script error")
)
