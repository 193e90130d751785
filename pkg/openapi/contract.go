package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-accountform/pkg/schema"
)

// PayloadSchemaName is the component name of the payload schema.
const PayloadSchemaName = "AccountSetup"

// ContractError lists payload violations keyed by JSON pointer.
type ContractError struct {
	Violations map[string][]string
}

func (e *ContractError) Error() string {
	paths := make([]string, 0, len(e.Violations))
	for path := range e.Violations {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, fmt.Sprintf("%s: %s", path, strings.Join(e.Violations[path], "; ")))
	}
	return "openapi: payload violates contract: " + strings.Join(parts, ", ")
}

// PayloadSchema builds the object schema of a submission payload.
func PayloadSchema(s *schema.Schema) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	var required []string
	for _, spec := range s.Specs() {
		prop := propertySchema(spec)
		out.WithProperty(string(spec.Field), prop)
		if hasRule(spec.Rules, schema.RuleRequired) {
			required = append(required, string(spec.Field))
		}
	}
	out.Required = required
	return out
}

// Document wraps the payload schema in an OpenAPI document.
func Document(s *schema.Schema, title, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				PayloadSchemaName: openapi3.NewSchemaRef("", PayloadSchema(s)),
			},
		},
	}
}

// CheckPayload verifies payload against the projected schema. Violations are
// returned as a ContractError.
func CheckPayload(s *schema.Schema, payload map[string]any) error {
	// Round-trip through JSON so numeric types match what a transport sees.
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("openapi: encode payload: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("openapi: decode payload: %w", err)
	}

	err = PayloadSchema(s).VisitJSON(decoded, openapi3.MultiErrors())
	if err == nil {
		return nil
	}
	return contractError(err)
}

func contractError(err error) error {
	violations := make(map[string][]string)
	collect(err, violations)
	if len(violations) == 0 {
		return fmt.Errorf("openapi: check payload: %w", err)
	}
	return &ContractError{Violations: violations}
}

func collect(err error, into map[string][]string) {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, item := range multi {
			collect(item, into)
		}
		return
	}
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		path := "/" + strings.Join(schemaErr.JSONPointer(), "/")
		into[path] = append(into[path], schemaErr.Reason)
	}
}

func propertySchema(spec schema.FieldSpec) *openapi3.Schema {
	var prop *openapi3.Schema
	switch spec.Type {
	case schema.FieldTypeNumber:
		prop = openapi3.NewFloat64Schema()
	case schema.FieldTypeBoolean:
		prop = openapi3.NewBoolSchema()
	default:
		prop = openapi3.NewStringSchema()
	}

	for _, rule := range spec.Rules {
		switch rule.Kind {
		case schema.RuleOneOf:
			enum := make([]any, len(rule.Values))
			for i, v := range rule.Values {
				enum[i] = v
			}
			prop.WithEnum(enum...)
		case schema.RuleNumericRange:
			prop.WithMin(rule.Min).WithMax(rule.Max)
		case schema.RuleRequired:
			if spec.Type == schema.FieldTypeString {
				prop.WithMinLength(1)
			}
		case schema.RuleEmailFormat:
			prop.Format = "email"
		}
	}
	return prop
}

func hasRule(rules []schema.Rule, kind schema.RuleKind) bool {
	for _, rule := range rules {
		if rule.Kind == kind {
			return true
		}
	}
	return false
}
