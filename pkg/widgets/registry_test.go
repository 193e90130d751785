package widgets

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-accountform/pkg/render"
	"github.com/goliatone/go-accountform/pkg/schema"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	field := Field{
		Spec: schema.FieldSpec{Field: "tls", Type: schema.FieldTypeBoolean},
		Hint: render.FieldHint{Widget: "custom-toggle"},
	}

	if got, ok := reg.Resolve(field); !ok || got != "custom-toggle" {
		t.Fatalf("expected explicit widget to win, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		field  Field
		expect string
	}{
		{
			name:   "boolean toggle",
			field:  Field{Spec: schema.FieldSpec{Type: schema.FieldTypeBoolean}},
			expect: WidgetToggle,
		},
		{
			name: "select from oneOf",
			field: Field{Spec: schema.FieldSpec{
				Type:  schema.FieldTypeString,
				Rules: []schema.Rule{schema.OneOf("a", "b")},
			}},
			expect: WidgetSelect,
		},
		{
			name: "select from hint options",
			field: Field{
				Spec: schema.FieldSpec{Type: schema.FieldTypeString},
				Hint: render.FieldHint{Options: []render.Option{{Label: "A", Value: "a"}}},
			},
			expect: WidgetSelect,
		},
		{
			name: "password for secrets",
			field: Field{
				Spec: schema.FieldSpec{Type: schema.FieldTypeString},
				Hint: render.FieldHint{Secret: true},
			},
			expect: WidgetPassword,
		},
		{
			name:   "number input",
			field:  Field{Spec: schema.FieldSpec{Type: schema.FieldTypeNumber}},
			expect: WidgetNumber,
		},
		{
			name:   "text fallback",
			field:  Field{Spec: schema.FieldSpec{Type: schema.FieldTypeString}},
			expect: WidgetText,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.Resolve(tc.field)
			if !ok {
				t.Fatalf("expected widget %q to resolve", tc.expect)
			}
			if got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestRegister_PriorityAndOrder(t *testing.T) {
	reg := &Registry{}
	reg.Register("low", 10, func(Field) bool { return true })
	reg.Register("high", 20, func(Field) bool { return true })
	reg.Register("high-later", 20, func(Field) bool { return true })

	if got, _ := reg.Resolve(Field{}); got != "high" {
		t.Fatalf("expected earliest highest-priority widget, got %q", got)
	}
}

func TestResolve_EmptyRegistry(t *testing.T) {
	var reg *Registry
	if _, ok := reg.Resolve(Field{}); ok {
		t.Fatalf("nil registry must not resolve")
	}
	if _, ok := (&Registry{}).Resolve(Field{}); ok {
		t.Fatalf("empty registry must not resolve")
	}
}

func TestOptionsFallBackToOneOf(t *testing.T) {
	field := Field{Spec: schema.FieldSpec{
		Type:  schema.FieldTypeString,
		Rules: []schema.Rule{schema.Required(), schema.OneOf("Advanced", "Manual")},
	}}
	want := []render.Option{{Label: "Advanced", Value: "Advanced"}, {Label: "Manual", Value: "Manual"}}
	if diff := cmp.Diff(want, Options(field)); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}
