// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envfile loads the variable declarations file (conventionally
// env.json).
//
// Loading is forgiving: a missing file or a file that is not a JSON object
// is logged and treated as an empty configuration. Only failures to read an
// existing file (permissions, I/O errors, the path being a directory) are
// returned to the caller.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-envjson/internal/logger"
	"github.com/MKhiriev/go-envjson/models"
)

// DefaultFileName is the conventional name of the declarations file.
const DefaultFileName = "env.json"

// Loader reads declaration files.
type Loader struct {
	logger *logger.Logger
}

// NewLoader creates a Loader that reports recoverable problems to log.
func NewLoader(log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{logger: log}
}

// Load reads and decodes the file at path.
func (l *Loader) Load(path string) (models.RawConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn().Str("path", path).Msg("config file not found, continuing with empty configuration")
			return models.RawConfig{}, nil
		}
		return models.RawConfig{}, fmt.Errorf("error reading config file: %w", err)
	}

	if len(content) == 0 {
		return models.RawConfig{}, nil
	}

	cfg, err := Decode(content)
	if err != nil {
		l.logger.Error().Err(err).Str("path", path).Msg("error parsing config file, continuing with empty configuration")
		return models.RawConfig{}, nil
	}

	l.logger.Debug().Str("path", path).Int("variables", cfg.Len()).Msg("config file loaded")
	return cfg, nil
}
