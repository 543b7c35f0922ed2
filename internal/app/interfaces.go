// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"

	"github.com/MKhiriev/go-envjson/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/app_mock.go -package=mock

// ConfigLoader reads the declarations file.
type ConfigLoader interface {
	// Load returns the declarations found at path. A missing or malformed
	// file yields an empty configuration and a nil error; only unexpected
	// read failures are returned.
	Load(path string) (models.RawConfig, error)
}

// Launcher replaces the current process with a command.
type Launcher interface {
	// Exec does not return on success.
	Exec(name string, args []string, environ []string) error
}

// FileWatcher reports changes of the declarations file.
type FileWatcher interface {
	// Watch blocks until ctx is done, calling onChange after every settled
	// change of the file.
	Watch(ctx context.Context, onChange func()) error
}
