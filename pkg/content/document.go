package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document wraps the raw payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper. An empty payload is accepted so
// the decode step can report it as a ParseError.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, ErrNilSource
	}
	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode unmarshals the payload into v. Documents whose location ends in .yml
// or .yaml are read as YAML; everything else must be JSON.
func (d Document) Decode(v any) error {
	loc := d.Location()
	if len(bytes.TrimSpace(d.raw)) == 0 {
		return &ParseError{Path: loc, Err: errors.New("empty document")}
	}

	if isYAML(loc) {
		if err := yaml.Unmarshal(d.raw, v); err != nil {
			return &ParseError{Path: loc, Err: err}
		}
		return nil
	}

	if err := json.Unmarshal(d.raw, v); err != nil {
		return &ParseError{Path: loc, Err: err}
	}
	return nil
}

func isYAML(location string) bool {
	trimmed := location
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	switch strings.ToLower(path.Ext(trimmed)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
