package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kaku-editor/kaku/internal/engine"
)

// appName names the search-path subdirectory and the config file's base
// name, per spec §6's "<app>/config.<ext>" pattern.
const appName = "kaku"

// configFileName is the Lua config file's fixed base name (see SPEC_FULL.md
// §1: config is itself a Lua script run through the scripting bridge).
const configFileName = "config.lua"

// FileSystem abstracts file reads so tests can substitute an in-memory
// filesystem, following the teacher's loader.FileSystem idiom.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem against the real filesystem.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// DefaultFS returns the OS-backed FileSystem.
func DefaultFS() FileSystem { return OSFS{} }

// SearchPaths returns spec §6's fixed search order: /etc/<app>/config.lua,
// $XDG_CONFIG_HOME/<app>/config.lua (or ~/.config/<app>/config.lua when
// XDG_CONFIG_HOME is unset), then ./config.lua. ignoreGlobal skips the
// first entry.
func SearchPaths(ignoreGlobal bool) []string {
	var paths []string
	if !ignoreGlobal {
		paths = append(paths, filepath.Join("/etc", appName, configFileName))
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appName, configFileName))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, configFileName))
	}

	paths = append(paths, configFileName)
	return paths
}

// Resolve reads every existing config script in order and returns them as
// engine.ConfigSource values ready for Script.LoadString. explicitPath, when
// non-empty, overrides the search entirely: that single path must exist.
// When no explicit path is given and none of the search paths exist,
// Resolve fails with ErrNoConfigFound, naming the user-config path per
// spec §6's "failure message naming the user-config path" requirement.
func Resolve(fsys FileSystem, explicitPath string, ignoreGlobal bool) ([]engine.ConfigSource, error) {
	if explicitPath != "" {
		data, err := fsys.ReadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNoConfigFound, explicitPath, err)
		}
		return []engine.ConfigSource{{Path: explicitPath, Text: string(data)}}, nil
	}

	paths := SearchPaths(ignoreGlobal)
	var sources []engine.ConfigSource
	for _, p := range paths {
		if _, err := fsys.Stat(p); err != nil {
			continue
		}
		data, err := fsys.ReadFile(p)
		if err != nil {
			continue
		}
		sources = append(sources, engine.ConfigSource{Path: p, Text: string(data)})
	}

	if len(sources) == 0 {
		userPath := paths[len(paths)-1]
		if len(paths) > 1 {
			userPath = paths[len(paths)-2]
		}
		return nil, fmt.Errorf("%w (checked %v, user config is %s)", ErrNoConfigFound, paths, userPath)
	}
	return sources, nil
}
