package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

type document struct {
	Libraries []Entry `yaml:"libraries"`
}

// Parse decodes a YAML catalog document. Unknown fields are rejected.
func Parse(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(doc.Libraries) == 0 {
		return nil, fmt.Errorf("%w: no libraries", ErrInvalidCatalog)
	}
	return doc.Libraries, nil
}

// ParseFile reads and decodes name from fsys.
func ParseFile(fsys fs.FS, name string) ([]Entry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadCatalog, name, err)
	}
	return Parse(bytes.NewReader(data))
}

// Marshal encodes entries as a catalog document.
func Marshal(entries []Entry) ([]byte, error) {
	return yaml.Marshal(document{Libraries: entries})
}
