package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/validation"
)

// FieldError pairs a failing field with its display label and message.
type FieldError struct {
	Field   schema.FieldName
	Label   string
	Message string
}

// ErrorMapping splits messages into field-level entries keyed by field name
// and form-level messages that cannot be attributed to a declared field.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// FieldErrors lists the failing fields of result in canonical schema order.
func FieldErrors(s *schema.Schema, result validation.Result, hints Hints) []FieldError {
	if result.Valid {
		return nil
	}
	out := make([]FieldError, 0, len(result.Errors))
	for _, field := range s.AllFields() {
		msg, ok := result.Error(field)
		if !ok {
			continue
		}
		out = append(out, FieldError{Field: field, Label: hints.Label(field), Message: msg})
	}
	return out
}

// SummaryLine renders a one-line description of result, e.g.
// "2 fields need attention: User Name (Required), Port (Required)".
func SummaryLine(s *schema.Schema, result validation.Result, hints Hints) string {
	errs := FieldErrors(s, result, hints)
	if len(errs) == 0 {
		return "all fields valid"
	}
	parts := make([]string, len(errs))
	for i, fe := range errs {
		parts[i] = fmt.Sprintf("%s (%s)", fe.Label, fe.Message)
	}
	noun := "fields need"
	if len(errs) == 1 {
		noun = "field needs"
	}
	return fmt.Sprintf("%d %s attention: %s", len(errs), noun, strings.Join(parts, ", "))
}

// MapErrors converts externally reported messages (for example a transport
// rejecting a submission) keyed by loosely formatted paths into an
// ErrorMapping. Paths such as "/body/port" or "payload.serverPath" resolve to
// the matching schema field; everything else becomes a form-level message.
func MapErrors(s *schema.Schema, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	for rawPath, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		field, ok := resolveField(s, rawPath)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[string(field)] = normalizeMessages(append(mapping.Fields[string(field)], normalized...))
	}
	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func resolveField(s *schema.Schema, raw string) (schema.FieldName, bool) {
	segments := dropWrapperSegments(parsePathSegments(raw))
	if len(segments) != 1 {
		return "", false
	}
	field := schema.FieldName(segments[0])
	return field, s.Has(field)
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimPrefix(clean, "#")
		clean = strings.TrimPrefix(clean, "/")
		clean = strings.TrimPrefix(clean, ".")
		clean = strings.TrimPrefix(clean, "$")
	}
	clean = strings.Trim(clean, "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func dropWrapperSegments(segments []string) []string {
	wrappers := map[string]struct{}{
		"body":    {},
		"request": {},
		"payload": {},
		"data":    {},
	}

	out := segments
	for len(out) > 0 {
		if _, ok := wrappers[strings.ToLower(out[0])]; ok {
			out = out[1:]
			continue
		}
		break
	}
	return out
}
