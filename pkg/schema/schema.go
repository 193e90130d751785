package schema

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Schema is the immutable, ordered set of field specs of a form.
type Schema struct {
	specs      []FieldSpec
	index      map[FieldName]int
	dependents map[FieldName][]FieldName
}

// New validates the specs and builds a Schema preserving declaration order.
// Every problem found is reported in the returned error.
func New(specs ...FieldSpec) (*Schema, error) {
	s := &Schema{
		specs:      make([]FieldSpec, 0, len(specs)),
		index:      make(map[FieldName]int, len(specs)),
		dependents: make(map[FieldName][]FieldName),
	}

	var errs error
	for _, spec := range specs {
		name := FieldName(strings.TrimSpace(string(spec.Field)))
		if name == "" {
			errs = multierr.Append(errs, fmt.Errorf("schema: field #%d has no name", len(s.specs)+1))
			continue
		}
		if _, dup := s.index[name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("schema: duplicate field %q", name))
			continue
		}
		spec = spec.clone()
		spec.Field = name
		s.index[name] = len(s.specs)
		s.specs = append(s.specs, spec)
	}

	for _, spec := range s.specs {
		errs = multierr.Append(errs, s.check(spec))
		if controller, ok := spec.Controller(); ok {
			s.dependents[controller] = append(s.dependents[controller], spec.Field)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return s, nil
}

// MustNew panics if the schema is invalid. Use it for schemas declared at
// process start where a mismatch is a programming error.
func MustNew(specs ...FieldSpec) *Schema {
	s, err := New(specs...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) check(spec FieldSpec) error {
	var errs error
	if !spec.Type.valid() {
		errs = multierr.Append(errs, fmt.Errorf("schema: field %q has unknown type %q", spec.Field, spec.Type))
	}
	for _, rule := range spec.Rules {
		if err := rule.validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("schema: field %q: %w", spec.Field, err))
		}
	}
	cond := spec.Conditional
	if cond == nil {
		return errs
	}
	switch {
	case cond.Field == spec.Field:
		errs = multierr.Append(errs, fmt.Errorf("schema: field %q conditional is controlled by itself", spec.Field))
	case !s.Has(cond.Field):
		errs = multierr.Append(errs, fmt.Errorf("schema: field %q conditional: %w", spec.Field, &UnknownFieldError{Field: cond.Field}))
	}
	for _, rule := range append(append([]Rule(nil), cond.ThenRules...), cond.ElseRules...) {
		if err := rule.validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("schema: field %q conditional: %w", spec.Field, err))
		}
	}
	return errs
}

// GetSpec returns a copy of the spec declared for field.
func (s *Schema) GetSpec(field FieldName) (FieldSpec, error) {
	idx, ok := s.index[field]
	if !ok {
		return FieldSpec{}, &UnknownFieldError{Field: field}
	}
	return s.specs[idx].clone(), nil
}

// AllFields returns the field names in declaration order. This order is the
// canonical iteration order of the validation engine.
func (s *Schema) AllFields() []FieldName {
	out := make([]FieldName, len(s.specs))
	for i, spec := range s.specs {
		out[i] = spec.Field
	}
	return out
}

// Specs returns copies of every spec in declaration order.
func (s *Schema) Specs() []FieldSpec {
	out := make([]FieldSpec, len(s.specs))
	for i, spec := range s.specs {
		out[i] = spec.clone()
	}
	return out
}

// Range calls fn for every spec in declaration order until fn returns false.
// The specs are shared with the schema, not copied: fn must treat them and
// their rule slices as read-only. Use Specs when a mutable copy is needed.
func (s *Schema) Range(fn func(spec FieldSpec) bool) {
	for _, spec := range s.specs {
		if !fn(spec) {
			return
		}
	}
}

// Lookup returns the shared spec declared for field under the same read-only
// contract as Range.
func (s *Schema) Lookup(field FieldName) (FieldSpec, bool) {
	idx, ok := s.index[field]
	if !ok {
		return FieldSpec{}, false
	}
	return s.specs[idx], true
}

// Dependents lists the fields whose conditional rule is controlled by field,
// in declaration order.
func (s *Schema) Dependents(field FieldName) []FieldName {
	deps := s.dependents[field]
	if len(deps) == 0 {
		return nil
	}
	return append([]FieldName(nil), deps...)
}

// Has reports whether field is declared.
func (s *Schema) Has(field FieldName) bool {
	_, ok := s.index[field]
	return ok
}

// Len reports the number of declared fields.
func (s *Schema) Len() int {
	return len(s.specs)
}
