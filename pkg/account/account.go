// Package account declares the account-setup form: its fields, the
// validation schema with the Advanced-only server path and port rules, the
// initial values and the presentation hints shown by the terminal form.
package account

import (
	"sync"

	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/values"
)

const (
	FieldAccountType   schema.FieldName = "accountType"
	FieldUsername      schema.FieldName = "username"
	FieldPassword      schema.FieldName = "password"
	FieldServerAddress schema.FieldName = "serverAddress"
	FieldServerPath    schema.FieldName = "serverPath"
	FieldPort          schema.FieldName = "port"
	FieldUseSSL        schema.FieldName = "useSSL"
)

const (
	TypeAdvanced = "Advanced"
	TypeManual   = "Manual"
)

const (
	MessageInvalidAccountType = "Invalid Account Type"
	MessagePortRange          = "Port number must be between 1 and 65535"
)

const (
	MinPort = 1
	MaxPort = 65535
)

var (
	schemaOnce sync.Once
	current    *schema.Schema
)

// Schema returns the account-setup schema. It is built on first use and
// shared read-only afterwards.
func Schema() *schema.Schema {
	schemaOnce.Do(func() {
		current = schema.MustNew(Specs()...)
	})
	return current
}

// Specs returns the field specs of the form in declaration order.
func Specs() []schema.FieldSpec {
	advanced := schema.When(FieldAccountType, TypeAdvanced)
	return []schema.FieldSpec{
		{
			Field: FieldAccountType,
			Type:  schema.FieldTypeString,
			Rules: []schema.Rule{
				schema.Required(),
				schema.OneOf(TypeAdvanced, TypeManual).WithMessage(MessageInvalidAccountType),
			},
		},
		{
			Field: FieldUsername,
			Type:  schema.FieldTypeString,
			Rules: []schema.Rule{schema.Required(), schema.EmailFormat()},
		},
		{
			Field: FieldPassword,
			Type:  schema.FieldTypeString,
			Rules: []schema.Rule{schema.Required()},
		},
		{
			Field: FieldServerAddress,
			Type:  schema.FieldTypeString,
			Rules: []schema.Rule{schema.Required()},
		},
		{
			Field:       FieldServerPath,
			Type:        schema.FieldTypeString,
			Conditional: advanced.Then(schema.Required()),
		},
		{
			Field: FieldPort,
			Type:  schema.FieldTypeNumber,
			Conditional: advanced.Then(
				schema.Required(),
				schema.NumericRange(MinPort, MaxPort).WithMessage(MessagePortRange),
			),
		},
		{
			Field: FieldUseSSL,
			Type:  schema.FieldTypeBoolean,
		},
	}
}

// Defaults returns the initial values of a blank form.
func Defaults() values.Set {
	return values.NewSet(map[schema.FieldName]values.Value{
		FieldAccountType:   values.Text(""),
		FieldUsername:      values.Text(""),
		FieldPassword:      values.Text(""),
		FieldServerAddress: values.Text(""),
		FieldServerPath:    values.Text(""),
		FieldPort:          values.UnsetNumber(),
		FieldUseSSL:        values.Bool(false),
	})
}
