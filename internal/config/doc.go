// Package config resolves and reads kaku's Lua configuration script(s) per
// spec §6: a fixed search order of system, user, and working-directory
// paths, all of which run in order when present. Resolution and reading are
// kept separate from execution — engine.Script (internal/script) is what
// actually runs the Lua source this package returns.
package config
