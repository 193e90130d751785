package render

import (
	"strings"

	"github.com/goliatone/go-accountform/pkg/schema"
)

// Option is a selectable choice for picker-style fields. An empty Value is a
// placeholder entry that leaves the field unset.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// FieldHint carries presentation metadata for one field.
type FieldHint struct {
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string   `json:"help,omitempty" yaml:"help,omitempty"`
	Secret      bool     `json:"secret,omitempty" yaml:"secret,omitempty"`
	Options     []Option `json:"options,omitempty" yaml:"options,omitempty"`
	// Widget forces a prompt widget instead of the resolved default.
	Widget string `json:"widget,omitempty" yaml:"widget,omitempty"`
	// OnLabel and OffLabel caption boolean toggles.
	OnLabel  string `json:"onLabel,omitempty" yaml:"onLabel,omitempty"`
	OffLabel string `json:"offLabel,omitempty" yaml:"offLabel,omitempty"`
}

// Hints maps fields to their presentation metadata.
type Hints map[schema.FieldName]FieldHint

// Label returns the display label of field, falling back to its name.
func (h Hints) Label(field schema.FieldName) string {
	if hint, ok := h[field]; ok && strings.TrimSpace(hint.Label) != "" {
		return strings.TrimSpace(hint.Label)
	}
	return string(field)
}

// Secret reports whether field values must be masked in summaries.
func (h Hints) Secret(field schema.FieldName) bool {
	return h[field].Secret
}

// Hint returns the hint of field and whether one is declared.
func (h Hints) Hint(field schema.FieldName) (FieldHint, bool) {
	hint, ok := h[field]
	return hint, ok
}

// ToggleCaption renders a boolean toggle caption such as "Use SSL: ON".
func (h Hints) ToggleCaption(field schema.FieldName, on bool) string {
	hint := h[field]
	if on && hint.OnLabel != "" {
		return hint.OnLabel
	}
	if !on && hint.OffLabel != "" {
		return hint.OffLabel
	}
	state := "OFF"
	if on {
		state = "ON"
	}
	return h.Label(field) + ": " + state
}
