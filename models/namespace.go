// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
)

// DefaultModeVar is the variable that names the active mode when nothing
// else is configured.
const DefaultModeVar = "APP_ENV"

// Namespace is the mutable context of one resolver pass.
//
// It owns two mappings:
//   - the live environment mapping (string values only), which is read to
//     decide whether a variable was supplied by the process and receives
//     write-backs of values selected from defaults or mode overrides;
//   - the resolved values, seeded with a copy of the environment and
//     overwritten with coerced values as variables are resolved.
//
// A Namespace is not safe for concurrent use; it is built by a single
// sequential pass and only read afterwards.
type Namespace struct {
	env      map[string]string
	values   map[string]any
	resolved []string
	modeVar  string
}

// NewNamespace seeds a Namespace from an environ slice in "KEY=VALUE" form.
// Entries without "=" are skipped; values may themselves contain "=".
func NewNamespace(environ []string, modeVar string) *Namespace {
	if modeVar == "" {
		modeVar = DefaultModeVar
	}

	env := parseEnviron(environ)
	values := make(map[string]any, len(env))
	for k, v := range env {
		values[k] = v
	}

	return &Namespace{
		env:     env,
		values:  values,
		modeVar: modeVar,
	}
}

// LookupEnv reports the live environment value for key.
func (n *Namespace) LookupEnv(key string) (string, bool) {
	v, ok := n.env[key]
	return v, ok
}

// SetEnv writes value into the live environment mapping.
func (n *Namespace) SetEnv(key, value string) {
	n.env[key] = value
}

// Get returns the current namespace value for key.
func (n *Namespace) Get(key string) (any, bool) {
	v, ok := n.values[key]
	return v, ok
}

// Set stores a resolved value. The key is remembered in resolution order.
func (n *Namespace) Set(key string, value any) {
	if !n.IsResolved(key) {
		n.resolved = append(n.resolved, key)
	}
	n.values[key] = value
}

// IsResolved reports whether key was written by the resolver.
func (n *Namespace) IsResolved(key string) bool {
	for _, k := range n.resolved {
		if k == key {
			return true
		}
	}
	return false
}

// ModeVar returns the name of the variable holding the active mode.
func (n *Namespace) ModeVar() string {
	return n.modeVar
}

// Mode returns the active mode as currently visible in the namespace, or ""
// when the mode variable is unset or not a string.
func (n *Namespace) Mode() string {
	mode, _ := n.values[n.modeVar].(string)
	return mode
}

// ResolvedKeys returns the keys written by the resolver in resolution order.
func (n *Namespace) ResolvedKeys() []string {
	keys := make([]string, len(n.resolved))
	copy(keys, n.resolved)
	return keys
}

// Keys returns every key of the namespace: resolved keys first in resolution
// order, then the remaining environment keys sorted by name.
func (n *Namespace) Keys() []string {
	keys := n.ResolvedKeys()
	rest := make([]string, 0, len(n.values))
	for k := range n.values {
		if !n.IsResolved(k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// Values returns a shallow copy of the namespace values.
func (n *Namespace) Values() map[string]any {
	out := make(map[string]any, len(n.values))
	for k, v := range n.values {
		out[k] = v
	}
	return out
}

// Environ returns the live environment mapping as a sorted "KEY=VALUE"
// slice suitable for os/exec.
func (n *Namespace) Environ() []string {
	out := make([]string, 0, len(n.env))
	for k, v := range n.env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// parseEnviron converts an environ slice (["KEY=VALUE", ...]) into a map.
func parseEnviron(environ []string) map[string]string {
	result := make(map[string]string, len(environ))
	for _, entry := range environ {
		// split on the first "=" only
		idx := strings.Index(entry, "=")
		if idx == -1 {
			continue
		}
		result[entry[:idx]] = entry[idx+1:]
	}
	return result
}
