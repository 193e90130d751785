package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-accountform/pkg/render"
	"github.com/goliatone/go-accountform/pkg/schema"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetToggle   = "toggle"
	WidgetSelect   = "select"
	WidgetPassword = "password"
	WidgetNumber   = "number"
	WidgetText     = "text"
)

// Field is what matchers inspect: the spec plus its presentation hint.
type Field struct {
	Spec schema.FieldSpec
	Hint render.FieldHint
}

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects prompt widgets for fields based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence. Callers should avoid duplicate names; the
// latest registration wins during resolution.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit hint widget is
// honoured before matcher evaluation.
func (r *Registry) Resolve(field Field) (string, bool) {
	if explicit := strings.TrimSpace(field.Hint.Widget); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Options returns the picker choices of a field: the hint options when
// declared, otherwise the values of its first base oneOf rule.
func Options(field Field) []render.Option {
	if len(field.Hint.Options) > 0 {
		return field.Hint.Options
	}
	for _, rule := range field.Spec.Rules {
		if rule.Kind != schema.RuleOneOf {
			continue
		}
		options := make([]render.Option, len(rule.Values))
		for i, v := range rule.Values {
			options[i] = render.Option{Label: v, Value: v}
		}
		return options
	}
	return nil
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetToggle, 90, func(field Field) bool {
		return field.Spec.Type == schema.FieldTypeBoolean
	})

	r.Register(WidgetSelect, 70, func(field Field) bool {
		return field.Spec.Type == schema.FieldTypeString && len(Options(field)) > 0
	})

	r.Register(WidgetPassword, 60, func(field Field) bool {
		return field.Spec.Type == schema.FieldTypeString && field.Hint.Secret
	})

	r.Register(WidgetNumber, 50, func(field Field) bool {
		return field.Spec.Type == schema.FieldTypeNumber
	})

	r.Register(WidgetText, 0, func(Field) bool {
		return true
	})
}
