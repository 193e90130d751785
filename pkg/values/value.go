// Package values holds the tagged Value union and the immutable Set of field
// values the validation engine reads.
package values

import (
	"math"
	"strconv"
	"strings"
)

// Kind names the variant held by a Value.
type Kind string

const (
	KindEmpty   Kind = "empty"
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Value is one of Text, Number (possibly unset), Boolean or Empty. The zero
// Value is Empty.
type Value struct {
	kind   Kind
	text   string
	number float64
	set    bool
	flag   bool
}

// Empty returns the empty value.
func Empty() Value {
	return Value{kind: KindEmpty}
}

// Text wraps a string.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number wraps a set numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, number: n, set: true}
}

// UnsetNumber returns a numeric value with no number, distinct from zero.
func UnsetNumber() Value {
	return Value{kind: KindNumber}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBoolean, flag: b}
}

// ParseNumber converts raw numeric input. Blank input yields an unset number;
// input that is not a finite number is kept as Text so range checks can reject
// it instead of silently coercing it.
func ParseNumber(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UnsetNumber()
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return Text(raw)
	}
	return Number(n)
}

// Kind reports the variant. The zero Value reports KindEmpty.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindEmpty
	}
	return v.kind
}

// AsText returns the string of a Text value.
func (v Value) AsText() (string, bool) {
	if v.Kind() != KindText {
		return "", false
	}
	return v.text, true
}

// AsNumber returns the number of a set Number value.
func (v Value) AsNumber() (float64, bool) {
	if v.Kind() != KindNumber || !v.set {
		return 0, false
	}
	return v.number, true
}

// AsBool returns the flag of a Boolean value.
func (v Value) AsBool() (bool, bool) {
	if v.Kind() != KindBoolean {
		return false, false
	}
	return v.flag, true
}

// IsBlank reports Empty, whitespace-only Text and unset Number values.
func (v Value) IsBlank() bool {
	switch v.Kind() {
	case KindEmpty:
		return true
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindNumber:
		return !v.set
	default:
		return false
	}
}

// Native returns the Go value carried: string, float64, bool, or nil for
// Empty and unset numbers.
func (v Value) Native() any {
	switch v.Kind() {
	case KindText:
		return v.text
	case KindNumber:
		if !v.set {
			return nil
		}
		return v.number
	case KindBoolean:
		return v.flag
	default:
		return nil
	}
}

// Equal reports whether both values hold the same variant and content.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindText:
		return v.text == other.text
	case KindNumber:
		return v.set == other.set && (!v.set || v.number == other.number)
	case KindBoolean:
		return v.flag == other.flag
	default:
		return true
	}
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Kind() {
	case KindText:
		return v.text
	case KindNumber:
		if !v.set {
			return ""
		}
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	default:
		return ""
	}
}
