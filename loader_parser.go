package accountform

import (
	"context"

	"github.com/goliatone/go-accountform/pkg/schema"
)

// NewLoader constructs a YAML schema loader.
func NewLoader(options ...schema.LoaderOption) *schema.Loader {
	return schema.NewLoader(options...)
}

// LoadSchema reads a YAML schema from path, or returns the built-in account
// schema when path is empty.
func LoadSchema(ctx context.Context, path string, options ...schema.LoaderOption) (*schema.Schema, error) {
	if path == "" {
		return Schema(), nil
	}
	return schema.NewLoader(options...).Load(ctx, schema.SourceFromFile(path))
}
