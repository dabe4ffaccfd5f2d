package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

func TestLoadEnvFile_NonexistentFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Errorf("LoadEnvFile() error = %v, want nil", err)
	}
}

func TestLoadEnvFile_SetsUnsetVars(t *testing.T) {
	t.Setenv("QUILL_TEST_EXISTING", "keep")
	unsetForTest(t, "QUILL_TEST_NEW")
	unsetForTest(t, "QUILL_TEST_QUOTED")

	path := writeEnvFile(t, `# comment

QUILL_TEST_NEW=value
export QUILL_TEST_QUOTED="quoted value"
QUILL_TEST_EXISTING=replaced
not a pair
`)
	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}

	tests := map[string]string{
		"QUILL_TEST_NEW":      "value",
		"QUILL_TEST_QUOTED":   "quoted value",
		"QUILL_TEST_EXISTING": "keep",
	}
	for key, want := range tests {
		if got := os.Getenv(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestLoadEnvFiles_FirstFileWins(t *testing.T) {
	unsetForTest(t, "QUILL_TEST_ORDER")
	first := writeEnvFile(t, "QUILL_TEST_ORDER=first\n")
	second := writeEnvFile(t, "QUILL_TEST_ORDER=second\n")

	if err := LoadEnvFiles(first, second); err != nil {
		t.Fatalf("LoadEnvFiles() error = %v", err)
	}
	if got := os.Getenv("QUILL_TEST_ORDER"); got != "first" {
		t.Errorf("QUILL_TEST_ORDER = %q, want first", got)
	}
}

func TestEnvFiles(t *testing.T) {
	got := EnvFiles("/cfg")
	want := []string{".env.local", ".env", filepath.Join("/cfg", "env")}
	if len(got) != len(want) {
		t.Fatalf("EnvFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EnvFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if len(EnvFiles("")) != 2 {
		t.Errorf("EnvFiles(\"\") = %v, want two local files", EnvFiles(""))
	}
}

func TestParseEnvLine(t *testing.T) {
	tests := []struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"KEY = value ", "KEY", "value", true},
		{`KEY="a=b"`, "KEY", "a=b", true},
		{"KEY='single'", "KEY", "single", true},
		{`KEY="mismatched'`, "KEY", `"mismatched'`, true},
		{"export KEY=v", "KEY", "v", true},
		{"KEY=", "KEY", "", true},
		{"=value", "", "", false},
		{"no equals", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			key, value, ok := parseEnvLine(tt.line)
			if key != tt.wantKey || value != tt.wantValue || ok != tt.wantOK {
				t.Errorf("parseEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.line, key, value, ok, tt.wantKey, tt.wantValue, tt.wantOK)
			}
		})
	}
}

// unsetForTest unsets key and restores it after the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
