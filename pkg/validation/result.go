package validation

import "github.com/goliatone/go-accountform/pkg/schema"

// Result is the outcome of one validation call. Errors holds one message per
// failing field, Failed lists those fields in canonical schema order and Valid
// is true iff no field failed.
type Result struct {
	Errors map[schema.FieldName]string `json:"errors,omitempty"`
	Failed []schema.FieldName          `json:"failed,omitempty"`
	Valid  bool                        `json:"valid"`
}

// Error returns the message attached to field.
func (r Result) Error(field schema.FieldName) (string, bool) {
	msg, ok := r.Errors[field]
	return msg, ok
}

// First returns the first failing field in canonical order.
func (r Result) First() (schema.FieldName, string, bool) {
	if len(r.Failed) == 0 {
		return "", "", false
	}
	field := r.Failed[0]
	return field, r.Errors[field], true
}

func newResult(order []schema.FieldName, errs map[schema.FieldName]string) Result {
	res := Result{Valid: len(errs) == 0}
	if len(errs) == 0 {
		return res
	}
	res.Errors = errs
	res.Failed = make([]schema.FieldName, 0, len(errs))
	for _, field := range order {
		if _, ok := errs[field]; ok {
			res.Failed = append(res.Failed, field)
		}
	}
	return res
}
