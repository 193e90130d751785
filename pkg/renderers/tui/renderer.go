package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-accountform/pkg/form"
	"github.com/goliatone/go-accountform/pkg/render"
	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/values"
	"github.com/goliatone/go-accountform/pkg/visibility"
	"github.com/goliatone/go-accountform/pkg/widgets"
)

// Renderer drives a form.Session from the terminal. Every visible field is
// prompted in schema order and re-prompted until its rules pass.
type Renderer struct {
	driver      PromptDriver
	hints       render.Hints
	visibility  visibility.Evaluator
	widgets     *widgets.Registry
	theme       Theme
	maxAttempts int
	logger      *zap.Logger
}

// New constructs a TUI renderer backed by survey prompts.
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:  newSurveyDriver(),
		widgets: widgets.NewRegistry(),
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// Render prompts for every visible field of the session and applies each
// answer. It returns once all prompted fields pass their rules.
func (r *Renderer) Render(ctx context.Context, session *form.Session) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if session == nil {
		return errors.New("tui: session is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s := session.Schema()
	ev := r.visibility
	if ev == nil {
		ev = visibility.FromSchema(s)
	}

	for _, spec := range s.Specs() {
		if !ev.Visible(spec.Field, session.Values()) {
			r.logger.Debug("field skipped", zap.String("field", string(spec.Field)))
			continue
		}
		if err := r.promptField(ctx, session, spec); err != nil {
			return err
		}
	}

	summary := render.SummaryLine(s, session.Result(), r.hints)
	return r.driver.Info(ctx, r.theme.InfoPrefix+summary)
}

func (r *Renderer) promptField(ctx context.Context, session *form.Session, spec schema.FieldSpec) error {
	for attempt := 1; ; attempt++ {
		value, err := r.ask(ctx, session, spec)
		if err != nil {
			return err
		}
		result, err := session.Apply(spec.Field, value)
		if err != nil {
			return err
		}
		msg, failed := result.Error(spec.Field)
		if !failed {
			return nil
		}

		r.logger.Debug("field rejected",
			zap.String("field", string(spec.Field)),
			zap.String("message", msg),
			zap.Int("attempt", attempt),
		)
		label := r.hints.Label(spec.Field)
		_ = r.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %s", r.theme.ErrorPrefix, label, msg))
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, spec.Field)
		}
	}
}

func (r *Renderer) ask(ctx context.Context, session *form.Session, spec schema.FieldSpec) (values.Value, error) {
	hint, _ := r.hints.Hint(spec.Field)
	message := r.theme.PromptPrefix + r.hints.Label(spec.Field)
	current := session.Values().Get(spec.Field)
	field := widgets.Field{Spec: spec, Hint: hint}

	widget, _ := r.widgets.Resolve(field)
	switch widget {
	case widgets.WidgetToggle:
		def, _ := current.AsBool()
		on, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: r.theme.PromptPrefix + r.hints.ToggleCaption(spec.Field, def),
			Default: def,
			Help:    hint.Help,
		})
		if err != nil {
			return values.Value{}, err
		}
		return values.Bool(on), nil

	case widgets.WidgetSelect:
		return r.choose(ctx, message, hint, widgets.Options(field), current)

	case widgets.WidgetPassword:
		raw, err := r.driver.Password(ctx, InputConfig{
			Message: message,
			Help:    helpText(hint),
		})
		if err != nil {
			return values.Value{}, err
		}
		return values.Text(raw), nil
	}

	raw, err := r.driver.Input(ctx, InputConfig{
		Message: message,
		Default: current.String(),
		Help:    helpText(hint),
	})
	if err != nil {
		return values.Value{}, err
	}
	if spec.Type == schema.FieldTypeNumber {
		return values.ParseNumber(raw), nil
	}
	return values.Text(strings.TrimSpace(raw)), nil
}

func (r *Renderer) choose(ctx context.Context, message string, hint render.FieldHint, options []render.Option, current values.Value) (values.Value, error) {
	labels := make([]string, len(options))
	def := -1
	text, _ := current.AsText()
	for i, opt := range options {
		labels[i] = opt.Label
		if def < 0 && opt.Value == text {
			def = i
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      labels,
		DefaultIndex: def,
		Help:         hint.Help,
	})
	if err != nil {
		return values.Value{}, err
	}
	if idx < 0 || idx >= len(options) {
		return values.Empty(), nil
	}
	if options[idx].Value == "" {
		return values.Empty(), nil
	}
	return values.Text(options[idx].Value), nil
}

func helpText(hint render.FieldHint) string {
	if hint.Help != "" {
		return hint.Help
	}
	return hint.Placeholder
}
