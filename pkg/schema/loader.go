package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// document is the YAML shape of a schema declaration.
type document struct {
	Fields []FieldSpec `yaml:"fields"`
}

// Decode builds a Schema from a YAML document. Unknown keys are rejected so
// typos in rule names surface at start-up.
func Decode(raw []byte) (*Schema, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("schema: document is empty")
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}
	if len(doc.Fields) == 0 {
		return nil, errors.New("schema: document declares no fields")
	}
	return New(doc.Fields...)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS sets the filesystem used for SourceKindFS sources.
func WithFS(files fs.FS) LoaderOption {
	return func(l *Loader) {
		l.files = files
	}
}

// Loader reads schema documents once, typically at process start.
type Loader struct {
	files fs.FS
}

// NewLoader constructs a Loader.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load reads and decodes the document identified by src.
func (l *Loader) Load(ctx context.Context, src Source) (*Schema, error) {
	if src == nil {
		return nil, errors.New("schema: source is required")
	}
	raw, err := l.read(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("schema: load %s: %w", src.Location(), err)
	}
	return Decode(raw)
}

func (l *Loader) read(ctx context.Context, src Source) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	switch src.Kind() {
	case SourceKindFile:
		abs, err := filepath.Abs(src.Location())
		if err != nil {
			return nil, err
		}
		return os.ReadFile(abs)
	case SourceKindFS:
		if l.files == nil {
			return nil, errors.New("fs is nil")
		}
		return fs.ReadFile(l.files, src.Location())
	default:
		return nil, fmt.Errorf("unsupported source kind %q", src.Kind())
	}
}
