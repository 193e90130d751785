package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/values"
)

var (
	emailOnce     sync.Once
	emailValidate *validator.Validate
)

func emailValidator() *validator.Validate {
	emailOnce.Do(func() {
		emailValidate = validator.New()
	})
	return emailValidate
}

// passes evaluates a single rule against a single value.
func passes(rule schema.Rule, v values.Value) bool {
	switch rule.Kind {
	case schema.RuleRequired:
		return !v.IsBlank()
	case schema.RuleOneOf:
		text, ok := v.AsText()
		return ok && rule.Allows(text)
	case schema.RuleEmailFormat:
		text, ok := v.AsText()
		return ok && isEmail(text)
	case schema.RuleNumericRange:
		n, ok := v.AsNumber()
		return ok && n >= rule.Min && n <= rule.Max
	default:
		return false
	}
}

// isEmail accepts local@domain with a non-empty local part and a dotted
// domain that also satisfies validator's email tag.
func isEmail(text string) bool {
	at := strings.LastIndex(text, "@")
	if at <= 0 || at == len(text)-1 {
		return false
	}
	domain := text[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return emailValidator().Var(text, "email") == nil
}

// firstFailure runs rules in declared order and stops at the first failure.
func firstFailure(rules []schema.Rule, v values.Value) (string, bool) {
	for _, rule := range rules {
		if !passes(rule, v) {
			return rule.FailureMessage(), true
		}
	}
	return "", false
}
