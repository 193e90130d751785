package validation

import (
	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/values"
)

// Validate evaluates every field of s against set in canonical order. Input
// problems end up in Result.Errors; the only error returned is an
// UnknownFieldError when set carries a field s does not declare.
func Validate(set values.Set, s *schema.Schema) (Result, error) {
	if err := checkFields(set, s); err != nil {
		return Result{}, err
	}

	errs := make(map[schema.FieldName]string)
	s.Range(func(spec schema.FieldSpec) bool {
		if msg, failed := evaluate(spec, set); failed {
			errs[spec.Field] = msg
		}
		return true
	})
	return newResult(s.AllFields(), errs), nil
}

// ValidateField evaluates a single field. It reports the message and whether
// the field failed.
func ValidateField(set values.Set, s *schema.Schema, field schema.FieldName) (string, bool, error) {
	spec, ok := s.Lookup(field)
	if !ok {
		return "", false, &schema.UnknownFieldError{Field: field}
	}
	msg, failed := evaluate(spec, set)
	return msg, failed, nil
}

// Revalidate re-evaluates only the changed fields and the fields whose
// conditional they control, reusing prev for the rest. When prev is the Result
// of the set before the change, the outcome equals Validate(set, s). Without
// changed fields nothing ties prev to set, so it falls back to Validate.
func Revalidate(prev Result, set values.Set, s *schema.Schema, changed ...schema.FieldName) (Result, error) {
	if len(changed) == 0 {
		return Validate(set, s)
	}
	if err := checkFields(set, s); err != nil {
		return Result{}, err
	}

	affected := make(map[schema.FieldName]struct{}, len(changed))
	for _, field := range changed {
		if !s.Has(field) {
			return Result{}, &schema.UnknownFieldError{Field: field}
		}
		affected[field] = struct{}{}
		for _, dep := range s.Dependents(field) {
			affected[dep] = struct{}{}
		}
	}

	errs := make(map[schema.FieldName]string, len(prev.Errors)+len(affected))
	for field, msg := range prev.Errors {
		if _, ok := affected[field]; !ok && s.Has(field) {
			errs[field] = msg
		}
	}
	for field := range affected {
		spec, _ := s.Lookup(field)
		if msg, failed := evaluate(spec, set); failed {
			errs[field] = msg
		}
	}
	return newResult(s.AllFields(), errs), nil
}

// EffectiveRules returns the base rules of spec followed by the conditional
// branch selected by set.
func EffectiveRules(spec schema.FieldSpec, set values.Set) []schema.Rule {
	rules := append([]schema.Rule(nil), spec.Rules...)
	if spec.Conditional == nil {
		return rules
	}
	text, isText := set.Get(spec.Conditional.Field).AsText()
	return append(rules, spec.Conditional.Select(text, isText)...)
}

func evaluate(spec schema.FieldSpec, set values.Set) (string, bool) {
	return firstFailure(EffectiveRules(spec, set), set.Get(spec.Field))
}

func checkFields(set values.Set, s *schema.Schema) error {
	for _, field := range set.Fields() {
		if !s.Has(field) {
			return &schema.UnknownFieldError{Field: field}
		}
	}
	return nil
}
