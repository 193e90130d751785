package schema

// FieldName identifies a field within a schema.
type FieldName string

// FieldType is the value variant a field carries.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

func (t FieldType) valid() bool {
	switch t {
	case FieldTypeString, FieldTypeNumber, FieldTypeBoolean:
		return true
	default:
		return false
	}
}

// FieldSpec declares how a single field is validated. Rules always apply;
// Conditional, when present, appends either its ThenRules or its ElseRules
// depending on the current value of the controlling field.
type FieldSpec struct {
	Field       FieldName        `json:"field" yaml:"name"`
	Type        FieldType        `json:"type" yaml:"type"`
	Rules       []Rule           `json:"rules,omitempty" yaml:"rules,omitempty"`
	Conditional *ConditionalRule `json:"conditional,omitempty" yaml:"when,omitempty"`
}

// Controller returns the field controlling the conditional rule, if any.
func (s FieldSpec) Controller() (FieldName, bool) {
	if s.Conditional == nil {
		return "", false
	}
	return s.Conditional.Field, true
}

func (s FieldSpec) clone() FieldSpec {
	out := FieldSpec{
		Field: s.Field,
		Type:  s.Type,
		Rules: cloneRules(s.Rules),
	}
	if s.Conditional != nil {
		cond := s.Conditional.clone()
		out.Conditional = &cond
	}
	return out
}
