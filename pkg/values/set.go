package values

import (
	"sort"

	"github.com/goliatone/go-accountform/pkg/schema"
)

// Set maps field names to values. A Set is never mutated after construction;
// With returns a modified copy so callers can pass it by value freely. Fields
// without an entry read as Empty.
type Set struct {
	entries map[schema.FieldName]Value
}

// NewSet copies entries into a new Set.
func NewSet(entries map[schema.FieldName]Value) Set {
	out := Set{entries: make(map[schema.FieldName]Value, len(entries))}
	for name, value := range entries {
		out.entries[name] = value
	}
	return out
}

// Get returns the value of field, or Empty when absent.
func (s Set) Get(field schema.FieldName) Value {
	if v, ok := s.entries[field]; ok {
		return v
	}
	return Empty()
}

// Lookup returns the value of field and whether an entry exists.
func (s Set) Lookup(field schema.FieldName) (Value, bool) {
	v, ok := s.entries[field]
	return v, ok
}

// With returns a copy of s with field set to value.
func (s Set) With(field schema.FieldName, value Value) Set {
	out := Set{entries: make(map[schema.FieldName]Value, len(s.entries)+1)}
	for name, v := range s.entries {
		out.entries[name] = v
	}
	out.entries[field] = value
	return out
}

// Without returns a copy of s without the given fields.
func (s Set) Without(fields ...schema.FieldName) Set {
	out := NewSet(s.entries)
	for _, field := range fields {
		delete(out.entries, field)
	}
	return out
}

// Fields returns the names with an entry, sorted.
func (s Set) Fields() []schema.FieldName {
	out := make([]schema.FieldName, 0, len(s.entries))
	for name := range s.entries {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len reports the number of entries.
func (s Set) Len() int {
	return len(s.entries)
}

// Map returns a copy of the entries.
func (s Set) Map() map[schema.FieldName]Value {
	out := make(map[schema.FieldName]Value, len(s.entries))
	for name, v := range s.entries {
		out[name] = v
	}
	return out
}

// Equal reports whether both sets hold equal values for the same fields.
func (s Set) Equal(other Set) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for name, v := range s.entries {
		o, ok := other.entries[name]
		if !ok || !v.Equal(o) {
			return false
		}
	}
	return true
}

// Complete returns a copy of s with an Empty entry for every schema field that
// has none, so the set covers the full schema.
func Complete(s Set, sc *schema.Schema) Set {
	out := NewSet(s.entries)
	for _, field := range sc.AllFields() {
		if _, ok := out.entries[field]; !ok {
			out.entries[field] = Empty()
		}
	}
	return out
}
