package document

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lattice-viz/lattice/errors"
)

// Format identifies a document encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatForPath picks the encoding from a file extension. TOML is the
// default for unknown extensions.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Decode parses a document from raw bytes.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, errors.WithMessagef(errors.ErrInvalidDocument, "parse failed: %v", err)
	}
	return &doc, nil
}

// Encode serializes a document.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return toml.Marshal(doc)
	}
}

// LoadFile reads and parses a document, picking the format from the
// extension.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", path)
	}
	return Decode(data, FormatForPath(path))
}

// SaveFile serializes a document to disk, picking the format from the
// extension.
func SaveFile(path string, doc *Document) error {
	data, err := Encode(doc, FormatForPath(path))
	if err != nil {
		return errors.Wrapf(err, "failed to encode document %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write document %s", path)
	}
	return nil
}
