// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver merges declared variables with the environment.
//
// A pass visits declarations in file order. For every variable the value
// comes from, in order of precedence, the environment, the override for the
// active mode, or the default. Values taken from the file are written back
// into the environment mapping so that later variables observe them. The
// value is then parsed (strings only) and validated for its declared or
// inferred type and stored in the namespace.
//
// The first fatal condition stops the pass and is returned as a
// *FatalError; variables declared after it are never visited.
package resolver

import (
	"errors"
	"os"

	"github.com/MKhiriev/go-envjson/internal/converter"
	"github.com/MKhiriev/go-envjson/internal/logger"
	"github.com/MKhiriev/go-envjson/models"
)

// value sources, used in debug logs
const (
	sourceEnvironment = "environment"
	sourceMode        = "mode"
	sourceDefault     = "default"
)

// Resolver runs resolver passes.
type Resolver struct {
	table  *converter.Table
	logger *logger.Logger
	setenv func(key, value string) error
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithProcessEnv mirrors every write-back into the real process environment
// with os.Setenv.
func WithProcessEnv() Option {
	return func(r *Resolver) {
		r.setenv = os.Setenv
	}
}

// WithSetenv mirrors every write-back through fn.
func WithSetenv(fn func(key, value string) error) Option {
	return func(r *Resolver) {
		r.setenv = fn
	}
}

// NewResolver creates a Resolver using table for parsing and validation.
func NewResolver(table *converter.Table, log *logger.Logger, opts ...Option) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	r := &Resolver{table: table, logger: log}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve performs one pass over cfg, mutating ns. On a fatal condition ns
// holds whatever was resolved before the failing variable and the error is
// a *FatalError.
func (r *Resolver) Resolve(cfg models.RawConfig, ns *models.Namespace) error {
	for _, entry := range cfg.Entries {
		if err := r.resolveOne(entry.Key, entry.Value, ns); err != nil {
			return err
		}
	}

	r.logger.Debug().
		Int("declared", cfg.Len()).
		Int("resolved", len(ns.ResolvedKeys())).
		Msg("resolver pass finished")
	return nil
}

func (r *Resolver) resolveOne(key string, declaration any, ns *models.Namespace) error {
	opts := models.OptionsOf(declaration)

	envValue, fromEnv := ns.LookupEnv(key)
	defaultValue, hasDefault := opts.Default()
	modeValue, hasMode := opts.ForMode(ns.Mode())

	if !fromEnv && !hasDefault && !hasMode {
		if opts.Required() {
			return &FatalError{Key: key, Kind: ErrRequired}
		}
		r.logger.Debug().Str("key", key).Msg("no value, skipping")
		return nil
	}

	// the mode override, when present, stands in for the default
	fileValue, source := defaultValue, sourceDefault
	if hasMode {
		fileValue, source = modeValue, sourceMode
	}
	declaredType, typeDeclared := opts.Type()

	var (
		value    any
		typeName any
	)
	switch {
	case fromEnv:
		value, source = envValue, sourceEnvironment
		switch {
		case typeDeclared:
			typeName = declaredType
		case hasMode || hasDefault:
			typeName = converter.TypeOf(fileValue)
		default:
			// the environment only holds strings
			typeName = converter.TypeString.String()
		}
	default:
		value = fileValue
		typeName = converter.TypeOf(value)
		if typeDeclared {
			typeName = declaredType
		}
		r.writeBack(key, value, ns)
	}

	name, _ := typeName.(string)
	typ, ok := converter.ParseType(name)
	if !ok {
		return &FatalError{Key: key, Kind: ErrUnsupportedType, Type: typeName, Value: value}
	}

	parsed := value
	if raw, isString := value.(string); isString {
		var err error
		parsed, err = r.table.Parse(typ, raw, ns)
		if err != nil {
			kind := ErrInvalidValue
			if errors.Is(err, converter.ErrEvaluation) {
				kind = ErrEvaluation
			}
			return &FatalError{Key: key, Kind: kind, Type: typeName, Value: value, Err: err}
		}
	}

	if !r.table.Validate(typ, parsed) {
		return &FatalError{Key: key, Kind: ErrInvalidValue, Type: typeName, Value: value}
	}

	ns.Set(key, parsed)
	r.logger.Debug().
		Str("key", key).
		Str("source", source).
		Stringer("type", typ).
		Msg("variable resolved")
	return nil
}

// writeBack stores a value selected from the file in the environment
// mapping, and in the process environment when configured to.
func (r *Resolver) writeBack(key string, value any, ns *models.Namespace) {
	s := converter.Stringify(value)
	ns.SetEnv(key, s)

	if r.setenv == nil {
		return
	}
	if err := r.setenv(key, s); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("error exporting variable to process environment")
	}
}
