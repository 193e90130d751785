package values

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-accountform/pkg/schema"
)

// ParseStrings converts raw string input keyed by field name into a Set typed
// after the schema: number fields go through ParseNumber and boolean fields
// through strconv.ParseBool. Keys match field names case-insensitively since
// config layers tend to fold case. Keys are processed in sorted order, so the
// first unknown or malformed key reported is stable. Unknown keys yield an
// UnknownFieldError.
func ParseStrings(sc *schema.Schema, raw map[string]string) (Set, error) {
	byKey := make(map[string]schema.FieldSpec, sc.Len())
	sc.Range(func(spec schema.FieldSpec) bool {
		byKey[strings.ToLower(string(spec.Field))] = spec
		return true
	})

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := NewSet(nil)
	for _, key := range keys {
		text := raw[key]
		spec, ok := byKey[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			return Set{}, &schema.UnknownFieldError{Field: schema.FieldName(key)}
		}
		switch spec.Type {
		case schema.FieldTypeNumber:
			out.entries[spec.Field] = ParseNumber(text)
		case schema.FieldTypeBoolean:
			if strings.TrimSpace(text) == "" {
				out.entries[spec.Field] = Empty()
				continue
			}
			b, err := strconv.ParseBool(strings.TrimSpace(text))
			if err != nil {
				return Set{}, fmt.Errorf("values: field %q: %w", spec.Field, err)
			}
			out.entries[spec.Field] = Bool(b)
		default:
			out.entries[spec.Field] = Text(text)
		}
	}
	return out, nil
}
