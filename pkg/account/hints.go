package account

import "github.com/goliatone/go-accountform/pkg/render"

// Hints returns the labels, placeholders and picker options of the form.
func Hints() render.Hints {
	return render.Hints{
		FieldAccountType: {
			Label: "Account Type",
			Options: []render.Option{
				{Label: "Select Account Type", Value: ""},
				{Label: TypeAdvanced, Value: TypeAdvanced},
				{Label: TypeManual, Value: TypeManual},
			},
		},
		FieldUsername: {
			Label:       "User Name",
			Placeholder: "name@example.com",
		},
		FieldPassword: {
			Label:       "Password",
			Placeholder: "Required",
			Secret:      true,
		},
		FieldServerAddress: {
			Label:       "Server Address",
			Placeholder: "example.com",
		},
		FieldServerPath: {
			Label:       "Server Path",
			Placeholder: "/calendars/users",
		},
		FieldPort: {
			Label: "Port",
			Help:  "1-65535",
		},
		FieldUseSSL: {
			Label:    "Use SSL",
			OnLabel:  "Use SSL: ON",
			OffLabel: "Use SSL: OFF",
		},
	}
}
