package config

import "errors"

// ErrNoConfigFound is returned by Resolve when none of the search paths
// exist and none was given explicitly via --config.
var ErrNoConfigFound = errors.New("kaku: no config.lua found on the search path")
