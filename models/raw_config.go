// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawEntry is one top-level declaration of the configuration file: a variable
// name and either a literal default (shorthand) or an options record decoded
// as map[string]any.
type RawEntry struct {
	Key   string
	Value any
}

// RawConfig is the parsed configuration file. Entries keep the order in
// which keys first appeared in the document.
type RawConfig struct {
	Entries []RawEntry
}

// Len returns the number of declared variables.
func (c RawConfig) Len() int {
	return len(c.Entries)
}

// Keys returns declared variable names in declaration order.
func (c RawConfig) Keys() []string {
	keys := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		keys[i] = e.Key
	}
	return keys
}
