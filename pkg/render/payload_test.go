package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-accountform/pkg/account"
	"github.com/goliatone/go-accountform/pkg/render"
	"github.com/goliatone/go-accountform/pkg/testsupport"
	"github.com/goliatone/go-accountform/pkg/values"
)

func advancedSet() values.Set {
	return testsupport.AdvancedValues()
}

func TestPayloadConvertsValues(t *testing.T) {
	got := render.Payload(account.Schema(), advancedSet())
	want := map[string]any{
		"accountType":   "Advanced",
		"username":      "a@b.co",
		"password":      "s3cret",
		"serverAddress": "example.com",
		"serverPath":    "/calendars/users",
		"port":          int64(8443),
		"useSSL":        true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadOmitsEmptyAndUnset(t *testing.T) {
	set := advancedSet().
		With(account.FieldPort, values.UnsetNumber()).
		With(account.FieldServerAddress, values.Empty()).
		Without(account.FieldUseSSL)
	got := render.Payload(account.Schema(), set)

	for _, key := range []string{"port", "serverAddress", "useSSL"} {
		if _, ok := got[key]; ok {
			t.Errorf("expected %s to be omitted, got %v", key, got[key])
		}
	}
	if len(got) != 4 {
		t.Fatalf("payload = %v", got)
	}
}

func TestPayloadKeepsStaleGatedValues(t *testing.T) {
	set := advancedSet().With(account.FieldAccountType, values.Text(account.TypeManual))
	got := render.Payload(account.Schema(), set)
	if got["serverPath"] != "/calendars/users" || got["port"] != int64(8443) {
		t.Fatalf("stale values dropped: %v", got)
	}
}

func TestPayloadKeepsFractionalNumbers(t *testing.T) {
	got := render.Payload(account.Schema(), advancedSet().With(account.FieldPort, values.Number(1.5)))
	if got["port"] != 1.5 {
		t.Fatalf("port = %#v", got["port"])
	}
}
