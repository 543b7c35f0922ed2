package envfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-envjson/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode parses a configuration document into a RawConfig, keeping the
// order in which top-level keys first appear. A repeated key keeps its first
// position and takes the last value. JSON null decodes to an empty
// configuration.
func Decode(data []byte) (models.RawConfig, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return models.RawConfig{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}

	var cfg models.RawConfig
	switch tok {
	case json.Delim('{'):
		if cfg, err = decodeObject(dec); err != nil {
			return models.RawConfig{}, err
		}
	case nil:
		// null
	default:
		// arrays and scalars are rejected rather than iterated by index
		if err = skipValue(dec, tok); err != nil {
			return models.RawConfig{}, err
		}
		if err = expectEOF(dec); err != nil {
			return models.RawConfig{}, err
		}
		return models.RawConfig{}, fmt.Errorf("%w: top-level value is %v", ErrNotAnObject, describe(tok))
	}

	if err = expectEOF(dec); err != nil {
		return models.RawConfig{}, err
	}
	return cfg, nil
}

func decodeObject(dec *json.Decoder) (models.RawConfig, error) {
	var cfg models.RawConfig
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return models.RawConfig{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
		}
		key, ok := tok.(string)
		if !ok {
			return models.RawConfig{}, fmt.Errorf("%w: unexpected token %v", ErrMalformedConfig, tok)
		}

		var value any
		if err = dec.Decode(&value); err != nil {
			return models.RawConfig{}, fmt.Errorf("%w: value of %q: %w", ErrMalformedConfig, key, err)
		}

		if i, seen := index[key]; seen {
			cfg.Entries[i].Value = value
			continue
		}
		index[key] = len(cfg.Entries)
		cfg.Entries = append(cfg.Entries, models.RawEntry{Key: key, Value: value})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return models.RawConfig{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	return cfg, nil
}

// skipValue consumes the rest of a value whose first token was already read.
func skipValue(dec *json.Decoder, first json.Token) error {
	if first != json.Delim('[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedConfig, err)
		}
		switch tok {
		case json.Delim('['), json.Delim('{'):
			depth++
		case json.Delim(']'), json.Delim('}'):
			depth--
		}
	}
	return nil
}

func expectEOF(dec *json.Decoder) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	return fmt.Errorf("%w: unexpected %v after top-level value", ErrMalformedConfig, describe(tok))
}

func describe(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			return "an array"
		}
		return fmt.Sprintf("%q", t.String())
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%v", t)
	}
}
