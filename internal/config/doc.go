// Package config provides loading, merging and validation of the envjson
// tool's own settings.
//
// Settings are assembled from several sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON settings file (path taken from ENVJSON_CONFIG or --config)
//  3. Environment variables (ENVJSON_*)
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]. Command-line flags are
// registered on a caller-owned *pflag.FlagSet with [RegisterFlags], so the
// same set can be shared with a cobra command tree.
package config
