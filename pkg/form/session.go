package form

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/validation"
	"github.com/goliatone/go-accountform/pkg/values"
	"github.com/goliatone/go-accountform/pkg/visibility"
)

// Submitter receives the values of a valid form.
type Submitter interface {
	Submit(ctx context.Context, set values.Set) error
}

// SubmitterFunc adapts a function into a Submitter.
type SubmitterFunc func(ctx context.Context, set values.Set) error

// Submit delegates to the underlying function.
func (fn SubmitterFunc) Submit(ctx context.Context, set values.Set) error {
	return fn(ctx, set)
}

// Option configures a Session.
type Option func(*Session)

// WithValues seeds the session with initial values.
func WithValues(set values.Set) Option {
	return func(s *Session) {
		s.values = set
	}
}

// WithLogger sets the logger used for edit and submit events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScrubHidden drops fields hidden for the final values (for example the
// server path of a Manual account) from the submitted set.
func WithScrubHidden(ev visibility.Evaluator) Option {
	return func(s *Session) {
		s.scrub = ev
	}
}

// Session holds the value set of one form fill. It is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	schema *schema.Schema
	values values.Set
	result validation.Result
	logger *zap.Logger
	scrub  visibility.Evaluator
}

// NewSession validates the initial values and returns a Session. An unknown
// field in the initial values is reported as an UnknownFieldError.
func NewSession(s *schema.Schema, options ...Option) (*Session, error) {
	if s == nil {
		return nil, fmt.Errorf("form: schema is required")
	}
	sess := &Session{
		schema: s,
		values: values.NewSet(nil),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(sess)
		}
	}

	result, err := validation.Validate(sess.values, s)
	if err != nil {
		return nil, fmt.Errorf("form: initial values: %w", err)
	}
	sess.result = result
	return sess, nil
}

// Schema returns the schema the session validates against.
func (s *Session) Schema() *schema.Schema {
	return s.schema
}

// Apply merges a single edit and re-validates. The returned Result reflects
// the full value set after the edit.
func (s *Session) Apply(field schema.FieldName, value values.Value) (validation.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.schema.Has(field) {
		return validation.Result{}, &schema.UnknownFieldError{Field: field}
	}

	next := s.values.With(field, value)
	result, err := validation.Revalidate(s.result, next, s.schema, field)
	if err != nil {
		return validation.Result{}, err
	}
	s.values = next
	s.result = result

	msg, failed := result.Error(field)
	s.logger.Debug("field applied",
		zap.String("field", string(field)),
		zap.String("kind", string(value.Kind())),
		zap.Bool("field_valid", !failed),
		zap.String("message", msg),
		zap.Bool("form_valid", result.Valid),
	)
	return result, nil
}

// Values returns the current value set.
func (s *Session) Values() values.Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// Result returns the latest validation result.
func (s *Session) Result() validation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Error returns the current message of field.
func (s *Session) Error(field schema.FieldName) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result.Error(field)
}

// Submit hands the current values to sub when the form is valid, otherwise it
// returns an InvalidError carrying the result.
func (s *Session) Submit(ctx context.Context, sub Submitter) error {
	if sub == nil {
		return ErrNoSubmitter
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	set, result := s.values, s.result
	s.mu.Unlock()

	if !result.Valid {
		s.logger.Info("submit blocked", zap.Int("errors", len(result.Errors)))
		return &InvalidError{Result: result}
	}
	if s.scrub != nil {
		if hidden := visibility.Hidden(s.schema, s.scrub, set); len(hidden) > 0 {
			set = set.Without(hidden...)
		}
	}
	if err := sub.Submit(ctx, set); err != nil {
		s.logger.Warn("submit failed", zap.Error(err))
		return fmt.Errorf("form: submit: %w", err)
	}
	s.logger.Info("submitted", zap.Int("fields", set.Len()))
	return nil
}
