package schema

import (
	"fmt"
	"strconv"
)

// RuleKind enumerates the supported rule predicates.
type RuleKind string

const (
	RuleRequired     RuleKind = "required"
	RuleOneOf        RuleKind = "oneOf"
	RuleEmailFormat  RuleKind = "email"
	RuleNumericRange RuleKind = "range"
)

const (
	MessageRequired     = "Required"
	MessageInvalidEmail = "Invalid email"
	MessageInvalidValue = "Invalid value"
)

// Rule is a predicate over a single value plus its own parameters. Values is
// used by OneOf; Min and Max bound NumericRange inclusively. Message overrides
// the default failure message.
type Rule struct {
	Kind    RuleKind `json:"rule" yaml:"rule"`
	Values  []string `json:"values,omitempty" yaml:"values,omitempty"`
	Min     float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max     float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Message string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// Required fails on empty values, blank text and unset numbers.
func Required() Rule {
	return Rule{Kind: RuleRequired}
}

// OneOf fails unless the value is text exactly equal to one of values.
func OneOf(values ...string) Rule {
	return Rule{Kind: RuleOneOf, Values: append([]string(nil), values...)}
}

// EmailFormat fails unless the value is text shaped like local@domain.
func EmailFormat() Rule {
	return Rule{Kind: RuleEmailFormat}
}

// NumericRange fails unless the value is a set number within [min, max].
func NumericRange(min, max float64) Rule {
	return Rule{Kind: RuleNumericRange, Min: min, Max: max}
}

// WithMessage returns a copy of the rule reporting msg on failure.
func (r Rule) WithMessage(msg string) Rule {
	out := r.clone()
	out.Message = msg
	return out
}

// FailureMessage reports the message attached to a failure of this rule.
func (r Rule) FailureMessage() string {
	if r.Message != "" {
		return r.Message
	}
	switch r.Kind {
	case RuleRequired:
		return MessageRequired
	case RuleEmailFormat:
		return MessageInvalidEmail
	case RuleNumericRange:
		return fmt.Sprintf("Must be between %s and %s", formatBound(r.Min), formatBound(r.Max))
	default:
		return MessageInvalidValue
	}
}

// Allows reports whether text is a member of a OneOf rule.
func (r Rule) Allows(text string) bool {
	for _, candidate := range r.Values {
		if candidate == text {
			return true
		}
	}
	return false
}

func (r Rule) validate() error {
	switch r.Kind {
	case RuleRequired, RuleEmailFormat:
		return nil
	case RuleOneOf:
		if len(r.Values) == 0 {
			return fmt.Errorf("%s rule requires at least one value", r.Kind)
		}
	case RuleNumericRange:
		if r.Min > r.Max {
			return fmt.Errorf("%s rule min %s exceeds max %s", r.Kind, formatBound(r.Min), formatBound(r.Max))
		}
	default:
		return fmt.Errorf("unknown rule kind %q", r.Kind)
	}
	return nil
}

func (r Rule) clone() Rule {
	out := r
	out.Values = append([]string(nil), r.Values...)
	if len(out.Values) == 0 {
		out.Values = nil
	}
	return out
}

func cloneRules(rules []Rule) []Rule {
	if len(rules) == 0 {
		return nil
	}
	out := make([]Rule, len(rules))
	for i, rule := range rules {
		out[i] = rule.clone()
	}
	return out
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
