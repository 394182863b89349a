// Package commandline implements the single-line input buffer used for
// interactive command entry: a focus flag, contents, and a cursor column,
// driven entirely by discrete key events.
package commandline
