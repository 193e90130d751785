package validation_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-accountform/pkg/account"
	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/validation"
	"github.com/goliatone/go-accountform/pkg/testsupport"
	"github.com/goliatone/go-accountform/pkg/values"
)

func validManual() values.Set {
	return testsupport.ManualValues()
}

func validAdvanced() values.Set {
	return validManual().
		With(account.FieldAccountType, values.Text(account.TypeAdvanced)).
		With(account.FieldServerPath, values.Text("/calendars/users")).
		With(account.FieldPort, values.Number(8080))
}

func mustValidate(t *testing.T, set values.Set) validation.Result {
	t.Helper()
	res, err := validation.Validate(set, account.Schema())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	return res
}

func TestValidManualSetIsValid(t *testing.T) {
	res := mustValidate(t, validManual())
	if diff := cmp.Diff(validation.Result{Valid: true}, res); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if _, _, ok := res.First(); ok {
		t.Fatalf("valid result should have no first error")
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	set := account.Defaults()
	first := mustValidate(t, set)
	second := mustValidate(t, set)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("results differ (-first +second):\n%s", diff)
	}
}

func TestBlankFormReportsRequiredFields(t *testing.T) {
	res := mustValidate(t, account.Defaults())

	want := validation.Result{
		Errors: map[schema.FieldName]string{
			account.FieldAccountType:   schema.MessageRequired,
			account.FieldUsername:      schema.MessageRequired,
			account.FieldPassword:      schema.MessageRequired,
			account.FieldServerAddress: schema.MessageRequired,
		},
		Failed: []schema.FieldName{
			account.FieldAccountType,
			account.FieldUsername,
			account.FieldPassword,
			account.FieldServerAddress,
		},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestRequiredShortCircuitsRange(t *testing.T) {
	set := validAdvanced().With(account.FieldPort, values.UnsetNumber())
	res := mustValidate(t, set)

	msg, ok := res.Error(account.FieldPort)
	if !ok || msg != schema.MessageRequired {
		t.Fatalf("port error = %q (%v), want %q", msg, ok, schema.MessageRequired)
	}
}

func TestConditionalGating(t *testing.T) {
	for _, accountType := range []values.Value{
		values.Text(account.TypeManual),
		values.Text(""),
		values.Text("advanced"),
		values.Empty(),
		values.Number(1),
	} {
		for _, pair := range []struct {
			path values.Value
			port values.Value
		}{
			{values.Text(""), values.UnsetNumber()},
			{values.Empty(), values.Number(70000)},
			{values.Text("/x"), values.Text("abc")},
			{values.Text(""), values.Number(0)},
		} {
			set := validManual().
				With(account.FieldAccountType, accountType).
				With(account.FieldServerPath, pair.path).
				With(account.FieldPort, pair.port)
			res := mustValidate(t, set)
			if msg, ok := res.Error(account.FieldServerPath); ok {
				t.Errorf("accountType=%v: serverPath error %q", accountType, msg)
			}
			if msg, ok := res.Error(account.FieldPort); ok {
				t.Errorf("accountType=%v: port error %q", accountType, msg)
			}
		}
	}
}

func TestConditionalActivation(t *testing.T) {
	cases := []struct {
		name  string
		field schema.FieldName
		value values.Value
		want  string
	}{
		{"empty path", account.FieldServerPath, values.Text(""), schema.MessageRequired},
		{"blank path", account.FieldServerPath, values.Text("   "), schema.MessageRequired},
		{"port too large", account.FieldPort, values.Number(70000), account.MessagePortRange},
		{"port zero", account.FieldPort, values.Number(0), account.MessagePortRange},
		{"port negative", account.FieldPort, values.Number(-1), account.MessagePortRange},
		{"port text", account.FieldPort, values.ParseNumber("abc"), account.MessagePortRange},
		{"port empty", account.FieldPort, values.Empty(), schema.MessageRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := mustValidate(t, validAdvanced().With(tc.field, tc.value))
			want := validation.Result{
				Errors: map[schema.FieldName]string{tc.field: tc.want},
				Failed: []schema.FieldName{tc.field},
			}
			if diff := cmp.Diff(want, res); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}

	for _, port := range []float64{1, 8080, 65535} {
		res := mustValidate(t, validAdvanced().With(account.FieldPort, values.Number(port)))
		if !res.Valid {
			t.Errorf("port %v should be valid, got %+v", port, res.Errors)
		}
	}
}

func TestUnconditionalRequiredFields(t *testing.T) {
	for _, field := range []schema.FieldName{account.FieldUsername, account.FieldPassword, account.FieldServerAddress} {
		t.Run(string(field), func(t *testing.T) {
			res := mustValidate(t, validManual().With(field, values.Text("")))
			want := validation.Result{
				Errors: map[schema.FieldName]string{field: schema.MessageRequired},
				Failed: []schema.FieldName{field},
			}
			if diff := cmp.Diff(want, res); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmailShape(t *testing.T) {
	cases := map[string]bool{
		"a@b.co":           true,
		"user@example.com": true,
		"not-an-email":     false,
		"@example.com":     false,
		"user@":            false,
		"user@localhost":   false,
		"user@.com":        false,
		"user@example.":    false,
	}
	for input, ok := range cases {
		res := mustValidate(t, validManual().With(account.FieldUsername, values.Text(input)))
		msg, failed := res.Error(account.FieldUsername)
		if ok && failed {
			t.Errorf("%q: unexpected error %q", input, msg)
		}
		if !ok && msg != schema.MessageInvalidEmail {
			t.Errorf("%q: error = %q, want %q", input, msg, schema.MessageInvalidEmail)
		}
	}
}

func TestOneOfEnforcement(t *testing.T) {
	res := mustValidate(t, validManual().With(account.FieldAccountType, values.Text("Bogus")))
	if msg, _ := res.Error(account.FieldAccountType); msg != account.MessageInvalidAccountType {
		t.Fatalf("accountType error = %q", msg)
	}

	res = mustValidate(t, validManual().With(account.FieldAccountType, values.Bool(true)))
	if msg, _ := res.Error(account.FieldAccountType); msg != account.MessageInvalidAccountType {
		t.Fatalf("non-text accountType error = %q", msg)
	}

	res = mustValidate(t, validManual())
	if _, ok := res.Error(account.FieldAccountType); ok {
		t.Fatalf("Manual should be accepted")
	}
}

func TestValidIffNoErrors(t *testing.T) {
	sets := []values.Set{
		validManual(),
		validAdvanced(),
		account.Defaults(),
		validAdvanced().With(account.FieldPort, values.Number(0)),
		values.NewSet(nil),
	}
	for _, set := range sets {
		res := mustValidate(t, set)
		if res.Valid != (len(res.Errors) == 0) {
			t.Errorf("valid=%v with %d errors", res.Valid, len(res.Errors))
		}
		if len(res.Failed) != len(res.Errors) {
			t.Errorf("failed=%v errors=%v", res.Failed, res.Errors)
		}
	}
}

func TestUnknownFieldIsFatal(t *testing.T) {
	set := validManual().With("nickname", values.Text("x"))

	_, err := validation.Validate(set, account.Schema())
	if !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	_, _, err = validation.ValidateField(validManual(), account.Schema(), "nickname")
	if !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField from ValidateField, got %v", err)
	}

	_, err = validation.Revalidate(validation.Result{Valid: true}, validManual(), account.Schema(), "nickname")
	if !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField from Revalidate, got %v", err)
	}
}

func TestValidateField(t *testing.T) {
	msg, failed, err := validation.ValidateField(validAdvanced().With(account.FieldPort, values.Number(70000)), account.Schema(), account.FieldPort)
	if err != nil {
		t.Fatalf("validate field: %v", err)
	}
	if !failed || msg != account.MessagePortRange {
		t.Fatalf("port = %q, %v", msg, failed)
	}
}

func TestEffectiveRulesAppendsBranch(t *testing.T) {
	spec, err := account.Schema().GetSpec(account.FieldPort)
	if err != nil {
		t.Fatalf("get spec: %v", err)
	}

	if rules := validation.EffectiveRules(spec, validManual()); len(rules) != 0 {
		t.Fatalf("manual port rules = %v", rules)
	}
	rules := validation.EffectiveRules(spec, validAdvanced())
	kinds := make([]schema.RuleKind, len(rules))
	for i, r := range rules {
		kinds[i] = r.Kind
	}
	if diff := cmp.Diff([]schema.RuleKind{schema.RuleRequired, schema.RuleNumericRange}, kinds); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}

	userSpec, _ := account.Schema().GetSpec(account.FieldUsername)
	if got := validation.EffectiveRules(userSpec, validAdvanced()); len(got) != 2 {
		t.Fatalf("base rules must always apply, got %v", got)
	}
}

func TestElseBranchAndBaseRulesCombine(t *testing.T) {
	s := schema.MustNew(
		schema.FieldSpec{Field: "mode", Type: schema.FieldTypeString},
		schema.FieldSpec{
			Field:       "contact",
			Type:        schema.FieldTypeString,
			Rules:       []schema.Rule{schema.Required()},
			Conditional: schema.When("mode", "web").Then(schema.OneOf("https")).Else(schema.EmailFormat()),
		},
	)

	cases := []struct {
		mode, contact string
		want          string
	}{
		{"web", "", schema.MessageRequired},
		{"web", "https", ""},
		{"web", "a@b.co", schema.MessageInvalidValue},
		{"mail", "a@b.co", ""},
		{"mail", "https", schema.MessageInvalidEmail},
	}
	for _, tc := range cases {
		set := values.NewSet(map[schema.FieldName]values.Value{
			"mode":    values.Text(tc.mode),
			"contact": values.Text(tc.contact),
		})
		res, err := validation.Validate(set, s)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		msg, _ := res.Error("contact")
		if msg != tc.want {
			t.Errorf("mode=%s contact=%q: error %q, want %q", tc.mode, tc.contact, msg, tc.want)
		}
	}
}

func TestRevalidateMatchesValidate(t *testing.T) {
	s := account.Schema()
	edits := []struct {
		field schema.FieldName
		value values.Value
	}{
		{account.FieldAccountType, values.Text(account.TypeAdvanced)},
		{account.FieldUsername, values.Text("nope")},
		{account.FieldPort, values.Number(70000)},
		{account.FieldUsername, values.Text("a@b.co")},
		{account.FieldAccountType, values.Text(account.TypeManual)},
		{account.FieldPassword, values.Text("")},
		{account.FieldAccountType, values.Text(account.TypeAdvanced)},
		{account.FieldServerPath, values.Text("/srv")},
		{account.FieldPort, values.Number(443)},
		{account.FieldPassword, values.Text("secret")},
		{account.FieldAccountType, values.Text("Bogus")},
	}

	set := validManual()
	prev := mustValidate(t, set)
	for i, edit := range edits {
		set = set.With(edit.field, edit.value)
		incremental, err := validation.Revalidate(prev, set, s, edit.field)
		if err != nil {
			t.Fatalf("edit %d: revalidate: %v", i, err)
		}
		full := mustValidate(t, set)
		if diff := cmp.Diff(full, incremental); diff != "" {
			t.Fatalf("edit %d (%s): incremental differs (-full +incremental):\n%s", i, edit.field, diff)
		}
		prev = incremental
	}
}

func TestValidateIsSafeForConcurrentUse(t *testing.T) {
	set := validAdvanced().With(account.FieldPort, values.Number(70000))
	want := mustValidate(t, set)

	var wg sync.WaitGroup
	results := make([]validation.Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = validation.Validate(set, account.Schema())
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("goroutine %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestRevalidateWithoutChangesRunsFullValidation(t *testing.T) {
	s := account.Schema()
	stale := mustValidate(t, validManual())

	set := validManual().
		With(account.FieldUsername, values.Text("nope")).
		With(account.FieldPassword, values.Text(""))
	got, err := validation.Revalidate(stale, set, s)
	if err != nil {
		t.Fatalf("revalidate: %v", err)
	}
	if diff := cmp.Diff(mustValidate(t, set), got); diff != "" {
		t.Fatalf("result mismatch (-validate +revalidate):\n%s", diff)
	}
	if got.Valid {
		t.Fatalf("stale valid result carried over: %+v", got)
	}
}
