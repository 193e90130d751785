// Package visibility decides which fields a renderer presents for the current
// values. Hidden fields are still validated; visibility only drives prompting.
package visibility

import (
	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/values"
)

// Evaluator determines whether a field should be visible given the current
// values.
type Evaluator interface {
	Visible(field schema.FieldName, current values.Set) bool
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(field schema.FieldName, current values.Set) bool

// Visible delegates to the underlying function.
func (fn EvaluatorFunc) Visible(field schema.FieldName, current values.Set) bool {
	return fn(field, current)
}

// Always shows every field.
var Always Evaluator = EvaluatorFunc(func(schema.FieldName, values.Set) bool { return true })

// FromSchema hides a field when it carries no base rules, its conditional
// does not match, and the unmatched branch imposes no rules. A field gated
// solely by a conditional is only relevant while its condition holds.
func FromSchema(s *schema.Schema) Evaluator {
	gated := make(map[schema.FieldName]schema.ConditionalRule)
	for _, spec := range s.Specs() {
		if spec.Conditional == nil || len(spec.Rules) > 0 || len(spec.Conditional.ElseRules) > 0 {
			continue
		}
		gated[spec.Field] = *spec.Conditional
	}
	return EvaluatorFunc(func(field schema.FieldName, current values.Set) bool {
		cond, ok := gated[field]
		if !ok {
			return true
		}
		text, isText := current.Get(cond.Field).AsText()
		return isText && text == cond.Equals
	})
}

// Hidden lists the fields of s that ev hides for current, in schema order.
func Hidden(s *schema.Schema, ev Evaluator, current values.Set) []schema.FieldName {
	var out []schema.FieldName
	for _, field := range s.AllFields() {
		if !ev.Visible(field, current) {
			out = append(out, field)
		}
	}
	return out
}
