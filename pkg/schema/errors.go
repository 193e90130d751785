package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownField is matched by every UnknownFieldError through errors.Is.
var ErrUnknownField = errors.New("schema: unknown field")

// UnknownFieldError reports a field name the schema does not declare. It
// signals a schema/caller mismatch and should be treated as fatal.
type UnknownFieldError struct {
	Field FieldName
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("schema: unknown field %q", string(e.Field))
}

// Is lets errors.Is(err, ErrUnknownField) match.
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}
