package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// UpdateEnv names the environment variable that makes AssertGolden rewrite
// golden files instead of comparing against them.
const UpdateEnv = "GITURL_UPDATE_GOLDEN"

// GoldenPath resolves a golden name in the testdata directory.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name)
}

// LoadGolden deserialises JSON golden data into v, failing the test on error.
func LoadGolden(t testing.TB, name string, v any) {
	t.Helper()
	data, err := os.ReadFile(GoldenPath(name))
	if err != nil {
		t.Fatalf("read golden %s: %v", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode golden %s: %v", name, err)
	}
}

// WriteGolden serialises data as indented JSON to the golden path.
func WriteGolden(name string, data any) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(GoldenPath(name), append(bytes, '\n'), 0o644)
}

// AssertGolden compares got with the golden file decoded into a value of the
// same type. With UpdateEnv set the file is rewritten from got.
func AssertGolden[T any](t testing.TB, name string, got T) {
	t.Helper()
	if os.Getenv(UpdateEnv) != "" {
		if err := WriteGolden(name, got); err != nil {
			t.Fatalf("write golden %s: %v", name, err)
		}
		return
	}
	var want T
	LoadGolden(t, name, &want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("golden %s mismatch (-want +got):\n%s", name, diff)
	}
}
