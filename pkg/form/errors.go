package form

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-accountform/pkg/validation"
)

var (
	// ErrInvalid is matched by InvalidError through errors.Is.
	ErrInvalid = errors.New("form: values are invalid")
	// ErrNoSubmitter is returned when Submit is called without a submitter.
	ErrNoSubmitter = errors.New("form: submitter is nil")
)

// InvalidError reports a submission attempt while the form has errors.
type InvalidError struct {
	Result validation.Result
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("form: %d field(s) invalid", len(e.Result.Errors))
}

// Is lets errors.Is(err, ErrInvalid) match.
func (e *InvalidError) Is(target error) bool {
	return target == ErrInvalid
}
