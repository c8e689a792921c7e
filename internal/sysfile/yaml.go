package sysfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the top-level YAML shape:
//
//	systems:
//	  - name: dominant
//	    matrix: [[9, 1, 1], [2, 10, 3], [3, 4, 11]]
//	    vector: [10, 19, 0]
//	    tolerance: 0.001
//	    max_iterations: 1000
type document struct {
	Systems []System `yaml:"systems"`
}

// DecodeYAML parses a systems document and validates every entry.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func DecodeYAML(r io.Reader) ([]System, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sysfile: empty document: %w", ErrInvalidSystem)
		}

		return nil, fmt.Errorf("sysfile: decode yaml: %w", err)
	}
	if len(doc.Systems) == 0 {
		return nil, fmt.Errorf("sysfile: no systems: %w", ErrInvalidSystem)
	}
	for i := range doc.Systems {
		if doc.Systems[i].Name == "" {
			doc.Systems[i].Name = fmt.Sprintf("system-%d", i+1)
		}
		if err := doc.Systems[i].Validate(); err != nil {
			return nil, err
		}
	}

	return doc.Systems, nil
}

// EncodeYAML writes systems as a document readable by DecodeYAML.
func EncodeYAML(w io.Writer, systems ...System) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Systems: systems}); err != nil {
		return fmt.Errorf("sysfile: encode yaml: %w", err)
	}

	return enc.Close()
}
