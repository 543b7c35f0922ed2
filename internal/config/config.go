// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Defaults applied before any other source.
const (
	DefaultFilePath = "env.json"
	DefaultModeVar  = "APP_ENV"
	DefaultFormat   = FormatJSON
	DefaultDebounce = 100 * time.Millisecond
	DefaultLogLevel = "info"
)

// Output formats understood by the renderer.
const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatDotenv = "dotenv"
	FormatTable  = "table"
)

// StructuredConfig is the top-level configuration container of the envjson
// tool. It is populated by merging defaults, an optional JSON settings file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Resolver controls where declarations are read from and how the mode
	// is selected.
	Resolver Resolver `envPrefix:"ENVJSON_"`

	// Output controls how the resolved namespace is printed.
	Output Output `envPrefix:"ENVJSON_OUTPUT_"`

	// Watch holds settings of the watch command.
	Watch Watch `envPrefix:"ENVJSON_WATCH_"`

	// Log holds diagnostic logging settings.
	Log Log `envPrefix:"ENVJSON_LOG_"`

	// SettingsFilePath is the optional path to a JSON file with tool
	// settings. It is not the declarations file.
	// Env: ENVJSON_CONFIG, flag: -c / --config
	SettingsFilePath string `env:"ENVJSON_CONFIG"`
}

// Resolver holds settings of a resolution pass.
type Resolver struct {
	// FilePath is the declarations file, env.json by default.
	// Env: ENVJSON_FILE
	FilePath string `env:"FILE"`

	// ModeVar names the variable holding the active mode.
	// Env: ENVJSON_MODE_VAR
	ModeVar string `env:"MODE_VAR"`

	// Mode, when set, is written into the mode variable before resolution.
	// Env: ENVJSON_MODE
	Mode string `env:"MODE"`

	// SyncProcessEnv mirrors write-backs into the process environment.
	// Env: ENVJSON_SYNC_PROCESS_ENV
	SyncProcessEnv bool `env:"SYNC_PROCESS_ENV"`
}

// Output holds rendering settings.
type Output struct {
	// Format is one of json, yaml, dotenv or table.
	// Env: ENVJSON_OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// All prints the whole namespace instead of only the declared keys.
	// Env: ENVJSON_OUTPUT_ALL
	All bool `env:"ALL"`
}

// Watch holds settings of the file watcher.
type Watch struct {
	// Debounce is the quiet period after the last file event before the
	// declarations are resolved again.
	// Env: ENVJSON_WATCH_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: ENVJSON_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Pretty switches to human-friendly console output.
	// Env: ENVJSON_LOG_PRETTY
	Pretty bool `env:"PRETTY"`
}

// GetStructuredConfig loads, merges, and validates the tool configuration.
// fs must already be parsed; it may be nil when no flags are in use.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
