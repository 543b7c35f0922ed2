// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

var outputFormats = []string{FormatJSON, FormatYAML, FormatDotenv, FormatTable}

// validate checks that the final merged [StructuredConfig] is usable before
// any declarations are loaded.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Resolver.FilePath == "" {
		return fmt.Errorf("%w: empty declarations file path", ErrInvalidResolverConfigs)
	}
	if cfg.Resolver.ModeVar == "" {
		return fmt.Errorf("%w: empty mode variable name", ErrInvalidResolverConfigs)
	}

	if !slices.Contains(outputFormats, cfg.Output.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil || cfg.Log.Level == "" {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	if cfg.Watch.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive, got %s", ErrInvalidWatchConfigs, cfg.Watch.Debounce)
	}

	return nil
}
