package render

import (
	"math"

	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/values"
)

// Payload builds the submission record for set. Keys follow the schema field
// names; Empty values and unset numbers are omitted, integral numbers become
// int64. Stale values of fields gated off by a conditional are kept as-is.
func Payload(s *schema.Schema, set values.Set) map[string]any {
	out := make(map[string]any, s.Len())
	for _, field := range s.AllFields() {
		if native, ok := nativeValue(set.Get(field)); ok {
			out[string(field)] = native
		}
	}
	return out
}

func nativeValue(v values.Value) (any, bool) {
	native := v.Native()
	if native == nil {
		return nil, false
	}
	if n, ok := native.(float64); ok && n == math.Trunc(n) && math.Abs(n) < 1<<53 {
		return int64(n), true
	}
	return native, true
}
