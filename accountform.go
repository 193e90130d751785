// Package accountform exposes the account-setup form: its schema, the
// conditional validation engine, interactive sessions and the terminal form.
package accountform

import (
	"github.com/goliatone/go-accountform/pkg/account"
	"github.com/goliatone/go-accountform/pkg/form"
	"github.com/goliatone/go-accountform/pkg/render"
	"github.com/goliatone/go-accountform/pkg/renderers/tui"
	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/validation"
	"github.com/goliatone/go-accountform/pkg/values"
)

// Result aliases validation.Result for callers that only import the root
// package.
type Result = validation.Result

// Session aliases form.Session.
type Session = form.Session

// Set aliases values.Set.
type Set = values.Set

// Schema returns the built-in account-setup schema.
func Schema() *schema.Schema {
	return account.Schema()
}

// Hints returns the presentation hints of the built-in form.
func Hints() render.Hints {
	return account.Hints()
}

// Defaults returns the initial values of a blank form.
func Defaults() values.Set {
	return account.Defaults()
}

// Validate runs a full validation of set against the built-in schema.
func Validate(set values.Set) (Result, error) {
	return validation.Validate(set, account.Schema())
}

// NewSession starts a session on the built-in schema seeded with Defaults.
// A WithValues option replaces the defaults.
func NewSession(options ...form.Option) (*form.Session, error) {
	opts := append([]form.Option{form.WithValues(account.Defaults())}, options...)
	return form.NewSession(account.Schema(), opts...)
}

// NewTerminalForm builds a terminal renderer preloaded with the form hints.
func NewTerminalForm(options ...tui.Option) *tui.Renderer {
	opts := append([]tui.Option{tui.WithHints(account.Hints())}, options...)
	return tui.New(opts...)
}
