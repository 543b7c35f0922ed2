// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/MKhiriev/go-envjson/internal/converter"
	"github.com/MKhiriev/go-envjson/models"
)

// Supported format names.
const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatDotenv = "dotenv"
	FormatTable  = "table"
)

// Renderer writes a namespace to w.
type Renderer interface {
	Render(w io.Writer, ns *models.Namespace) error
}

// Entry is one rendered key.
type Entry struct {
	Key   string
	Value any
}

// NewRenderer returns the renderer for format. When all is false only the
// keys written by the resolver are rendered; otherwise the inherited
// environment follows them.
func NewRenderer(format string, all bool) (Renderer, error) {
	sel := selector{all: all}
	switch format {
	case FormatJSON:
		return &jsonRenderer{selector: sel}, nil
	case FormatYAML:
		return &yamlRenderer{selector: sel}, nil
	case FormatDotenv:
		return &dotenvRenderer{selector: sel}, nil
	case FormatTable:
		return &tableRenderer{selector: sel}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

type selector struct {
	all bool
}

func (s selector) entries(ns *models.Namespace) []Entry {
	keys := ns.ResolvedKeys()
	if s.all {
		keys = ns.Keys()
	}

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		v, _ := ns.Get(k)
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return entries
}

// plain maps values onto what JSON and YAML encoders accept. Non-finite
// numbers and function values become null, dates become RFC 3339 text.
func plain(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return t
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case converter.Func:
		return nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plain(e)
		}
		return out
	default:
		return v
	}
}
