package output

import "errors"

// ErrUnknownFormat is returned by NewRenderer for a format it cannot render.
var ErrUnknownFormat = errors.New("unknown output format")
