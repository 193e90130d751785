package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-accountform/pkg/account"
	"github.com/goliatone/go-accountform/pkg/schema"
	"github.com/goliatone/go-accountform/pkg/values"
)

// ManualValues returns a fully valid Manual account value set with the server
// path blank and the port unset.
func ManualValues() values.Set {
	return values.NewSet(map[schema.FieldName]values.Value{
		account.FieldAccountType:   values.Text(account.TypeManual),
		account.FieldUsername:      values.Text("a@b.co"),
		account.FieldPassword:      values.Text("x"),
		account.FieldServerAddress: values.Text("example.com"),
		account.FieldServerPath:    values.Text(""),
		account.FieldPort:          values.UnsetNumber(),
		account.FieldUseSSL:        values.Bool(false),
	})
}

// AdvancedValues returns a fully valid Advanced account value set.
func AdvancedValues() values.Set {
	return ManualValues().
		With(account.FieldAccountType, values.Text(account.TypeAdvanced)).
		With(account.FieldPassword, values.Text("s3cret")).
		With(account.FieldServerPath, values.Text("/calendars/users")).
		With(account.FieldPort, values.Number(8443)).
		With(account.FieldUseSSL, values.Bool(true))
}

// MustLoadSchema reads a YAML schema fixture.
func MustLoadSchema(t *testing.T, path string) *schema.Schema {
	t.Helper()

	s, err := schema.NewLoader().Load(context.Background(), schema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return s
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
