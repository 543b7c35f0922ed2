package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-envjson/models"
)

type jsonRenderer struct {
	selector
}

// Render writes an indented JSON object whose keys follow resolution order.
// encoding/json sorts map keys, so the top level is assembled by hand.
func (r *jsonRenderer) Render(w io.Writer, ns *models.Namespace) error {
	entries := r.entries(ns)

	var buf bytes.Buffer
	if len(entries) == 0 {
		buf.WriteString("{}\n")
		_, err := w.Write(buf.Bytes())
		return err
	}

	buf.WriteString("{\n")
	for i, e := range entries {
		key, err := json.Marshal(e.Key)
		if err != nil {
			return fmt.Errorf("error encoding key %q: %w", e.Key, err)
		}
		value, err := json.MarshalIndent(plain(e.Value), "  ", "  ")
		if err != nil {
			return fmt.Errorf("error encoding value of %q: %w", e.Key, err)
		}

		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}
