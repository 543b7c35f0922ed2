package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidResolverConfigs indicates invalid resolver settings
	// (for example, an empty declarations path or mode variable).
	ErrInvalidResolverConfigs = errors.New("invalid resolver configuration")
	// ErrInvalidOutputConfigs indicates an unknown output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidWatchConfigs indicates invalid watcher settings
	// (for example, a non-positive debounce).
	ErrInvalidWatchConfigs = errors.New("invalid watch configuration")
)
