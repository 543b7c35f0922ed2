package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-envjson/models"
)

type yamlRenderer struct {
	selector
}

// Render writes a YAML mapping whose keys follow resolution order.
func (r *yamlRenderer) Render(w io.Writer, ns *models.Namespace) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range r.entries(ns) {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}

		value := &yaml.Node{}
		if err := value.Encode(plain(e.Value)); err != nil {
			return fmt.Errorf("error encoding value of %q: %w", e.Key, err)
		}

		doc.Content = append(doc.Content, key, value)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error writing yaml: %w", err)
	}
	return enc.Close()
}
