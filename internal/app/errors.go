package app

import "errors"

// ErrLaunch wraps failures to start the command given to Exec, so callers
// can tell them apart from resolution failures.
var ErrLaunch = errors.New("error launching command")
