package tui

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-accountform/pkg/render"
	"github.com/goliatone/go-accountform/pkg/visibility"
	"github.com/goliatone/go-accountform/pkg/widgets"
)

// Theme captures optional formatting hints the driver can apply when printing
// messages. Keep minimal to avoid coupling renderer logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithHints supplies labels, placeholders and picker options.
func WithHints(hints render.Hints) Option {
	return func(r *Renderer) {
		r.hints = hints
	}
}

// WithVisibility overrides which fields are prompted for. By default fields
// gated off by their conditional rule are skipped.
func WithVisibility(ev visibility.Evaluator) Option {
	return func(r *Renderer) {
		r.visibility = ev
	}
}

// WithWidgets overrides the registry deciding which prompt each field uses.
func WithWidgets(reg *widgets.Registry) Option {
	return func(r *Renderer) {
		if reg != nil {
			r.widgets = reg
		}
	}
}

// WithMaxAttempts bounds how often a failing field is prompted again. Zero
// means no limit.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithLogger sets the renderer logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
