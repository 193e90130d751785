package schema

// ConditionalRule selects ThenRules when the controlling Field currently holds
// the text Equals and ElseRules otherwise. Selected rules are appended after the
// base rules of the owning field, never replacing them.
type ConditionalRule struct {
	Field     FieldName `json:"field" yaml:"field"`
	Equals    string    `json:"equals" yaml:"equals"`
	ThenRules []Rule    `json:"then,omitempty" yaml:"then,omitempty"`
	ElseRules []Rule    `json:"else,omitempty" yaml:"else,omitempty"`
}

// When starts a conditional rule controlled by field matching equals.
//
//	schema.When("accountType", "Advanced").Then(schema.Required())
func When(field FieldName, equals string) *ConditionalRule {
	return &ConditionalRule{Field: field, Equals: equals}
}

// Then sets the rules applied when the condition matches.
func (c *ConditionalRule) Then(rules ...Rule) *ConditionalRule {
	out := c.clone()
	out.ThenRules = cloneRules(rules)
	return &out
}

// Else sets the rules applied when the condition does not match.
func (c *ConditionalRule) Else(rules ...Rule) *ConditionalRule {
	out := c.clone()
	out.ElseRules = cloneRules(rules)
	return &out
}

// Select returns the branch chosen for the controlling value. isText is false
// when the controlling value is not text.
func (c ConditionalRule) Select(text string, isText bool) []Rule {
	if isText && text == c.Equals {
		return c.ThenRules
	}
	return c.ElseRules
}

func (c ConditionalRule) clone() ConditionalRule {
	return ConditionalRule{
		Field:     c.Field,
		Equals:    c.Equals,
		ThenRules: cloneRules(c.ThenRules),
		ElseRules: cloneRules(c.ElseRules),
	}
}
