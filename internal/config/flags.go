package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Flag names shared by RegisterFlags and parseFlags.
const (
	flagConfig         = "config"
	flagFile           = "file"
	flagModeVar        = "mode-var"
	flagMode           = "mode"
	flagSyncProcessEnv = "sync-process-env"
	flagFormat         = "format"
	flagAll            = "all"
	flagDebounce       = "debounce"
	flagLogLevel       = "log-level"
	flagLogPretty      = "log-pretty"
)

// RegisterFlags adds every configuration flag to fs.
//
// Flags are registered with zero defaults so that an unset flag never
// overrides a value coming from the environment or the settings file; the
// effective defaults are listed in the usage text instead.
//
// Flags:
//
//	-c/--config settings file path
//	-f/--file declarations file (default env.json)
//	--mode-var variable holding the mode (default APP_ENV)
//	-m/--mode force the mode
//	--sync-process-env mirror write-backs into the process environment
//	-o/--format output format: json, yaml, dotenv or table (default json)
//	--all print the whole namespace
//	--debounce watch debounce (default 100ms)
//	--log-level log level (default info)
//	--log-pretty human-friendly log output
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "JSON settings file path")
	fs.StringP(flagFile, "f", "", fmt.Sprintf("declarations file (default %q)", DefaultFilePath))
	fs.String(flagModeVar, "", fmt.Sprintf("variable holding the active mode (default %q)", DefaultModeVar))
	fs.StringP(flagMode, "m", "", "force the active mode")
	fs.Bool(flagSyncProcessEnv, false, "mirror write-backs into the process environment")
	fs.StringP(flagFormat, "o", "", fmt.Sprintf("output format: json, yaml, dotenv or table (default %q)", DefaultFormat))
	fs.Bool(flagAll, false, "print the whole namespace, not only declared variables")
	fs.Duration(flagDebounce, 0, fmt.Sprintf("watch debounce (default %s)", DefaultDebounce))
	fs.String(flagLogLevel, "", fmt.Sprintf("log level (default %q)", DefaultLogLevel))
	fs.Bool(flagLogPretty, false, "human-friendly log output")
}

// parseFlags reads the flags registered by RegisterFlags from an already
// parsed fs. Flags missing from fs are left at their zero value.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	r := flagReader{fs: fs}

	cfg.SettingsFilePath = r.str(flagConfig)
	cfg.Resolver.FilePath = r.str(flagFile)
	cfg.Resolver.ModeVar = r.str(flagModeVar)
	cfg.Resolver.Mode = r.str(flagMode)
	cfg.Resolver.SyncProcessEnv = r.boolean(flagSyncProcessEnv)
	cfg.Output.Format = r.str(flagFormat)
	cfg.Output.All = r.boolean(flagAll)
	cfg.Watch.Debounce = r.duration(flagDebounce)
	cfg.Log.Level = r.str(flagLogLevel)
	cfg.Log.Pretty = r.boolean(flagLogPretty)

	if r.err != nil {
		return nil, fmt.Errorf("error getting flag configs: %w", r.err)
	}
	return cfg, nil
}

// flagReader keeps the first lookup error so the field list stays flat.
type flagReader struct {
	fs  *pflag.FlagSet
	err error
}

func (r *flagReader) str(name string) string {
	if r.fs.Lookup(name) == nil {
		return ""
	}
	v, err := r.fs.GetString(name)
	r.keep(err)
	return v
}

func (r *flagReader) boolean(name string) bool {
	if r.fs.Lookup(name) == nil {
		return false
	}
	v, err := r.fs.GetBool(name)
	r.keep(err)
	return v
}

func (r *flagReader) duration(name string) time.Duration {
	if r.fs.Lookup(name) == nil {
		return 0
	}
	v, err := r.fs.GetDuration(name)
	r.keep(err)
	return v
}

func (r *flagReader) keep(err error) {
	if r.err == nil {
		r.err = err
	}
}

// explicitFlags returns setters for the flags given on the command line
// whose value may legitimately be zero: the booleans and --mode. mergo
// skips zero values, so without them --all=false could not turn off an
// ENVJSON_OUTPUT_ALL=true.
func explicitFlags(fs *pflag.FlagSet) []func(*StructuredConfig) {
	var setters []func(*StructuredConfig)

	pinBool := func(name string, set func(*StructuredConfig, bool)) {
		if !fs.Changed(name) {
			return
		}
		if v, err := fs.GetBool(name); err == nil {
			setters = append(setters, func(cfg *StructuredConfig) { set(cfg, v) })
		}
	}
	pinBool(flagSyncProcessEnv, func(cfg *StructuredConfig, v bool) { cfg.Resolver.SyncProcessEnv = v })
	pinBool(flagAll, func(cfg *StructuredConfig, v bool) { cfg.Output.All = v })
	pinBool(flagLogPretty, func(cfg *StructuredConfig, v bool) { cfg.Log.Pretty = v })

	if fs.Changed(flagMode) {
		if mode, err := fs.GetString(flagMode); err == nil {
			setters = append(setters, func(cfg *StructuredConfig) { cfg.Resolver.Mode = mode })
		}
	}
	return setters
}
