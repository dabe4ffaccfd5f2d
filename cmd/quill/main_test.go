package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/gorewood/quill/internal/config"
	"github.com/gorewood/quill/internal/journal"
)

// --- Test helpers ---

// isolateConfig points quill at an empty config directory and clears the
// environment overrides so tests never read the developer's journal.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("QUILL_CONFIG_HOME", dir)
	t.Setenv(config.EnvJournalDir, "")
	t.Setenv(config.EnvDatabase, "")
	t.Setenv(config.EnvTimezone, "UTC")
	return dir
}

func day(d int) civil.Date {
	return civil.Date{Year: 2026, Month: time.January, Day: d}
}

func testEntry(date civil.Date, mood, content string, tags ...string) *journal.Entry {
	created := date.In(time.UTC).Add(21 * time.Hour)
	return &journal.Entry{
		Schema:      journal.SchemaVersion,
		Date:        date,
		Content:     content,
		PrimaryMood: mood,
		Tags:        tags,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

// defaultEntries has a two-day run ending 2026-01-15 and a gap on the 12th and 13th.
func defaultEntries() []*journal.Entry {
	return []*journal.Entry{
		testEntry(day(10), "Calm", "Quiet start.", "home"),
		testEntry(day(11), "Tired", "Long **shift** at work.", "work"),
		testEntry(day(14), "Happy", "# Hike\n\n- water\n- snacks", "outdoors", "family"),
		testEntry(day(15), "Grateful", "Dinner with friends.", "family"),
	}
}

// writeJournal writes entries as YYYY/MM/YYYY-MM-DD.json files under a temp dir.
func writeJournal(t *testing.T, entries ...*journal.Entry) string {
	t.Helper()
	dir := t.TempDir()
	for _, entry := range entries {
		data, err := entry.ToJSON()
		if err != nil {
			t.Fatalf("serializing test entry: %v", err)
		}
		entryDir := filepath.Join(dir, journal.EntryDateDir(entry.Date))
		if err := os.MkdirAll(entryDir, 0o755); err != nil {
			t.Fatalf("creating entry dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(entryDir, entry.FileName(".json")), data, 0o600); err != nil {
			t.Fatalf("writing test entry: %v", err)
		}
	}
	return dir
}

// writeRawJournalFile writes a file directly into the journal directory.
func writeRawJournalFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// writeTestConfig writes config.yaml into the config directory.
func writeTestConfig(t *testing.T, configDir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(configDir, config.FileName), []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

// executeCommand runs the root command with args and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// decodeJSON unmarshals command output into target.
func decodeJSON(t *testing.T, out string, target any) {
	t.Helper()
	if err := json.Unmarshal([]byte(out), target); err != nil {
		t.Fatalf("output should be valid JSON: %v\nOutput: %s", err, out)
	}
}

// --- Root command tests ---

func TestRootCommand_Version(t *testing.T) {
	isolateConfig(t)
	version = "1.2.3"
	t.Cleanup(func() { version = "dev" })

	out, _, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "1.2.3") {
		t.Errorf("--version output should contain version: %q", out)
	}
	if !strings.Contains(out, "quill") {
		t.Errorf("--version output should contain 'quill': %q", out)
	}
}

func TestRootCommand_Help(t *testing.T) {
	isolateConfig(t)

	out, _, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"quill", "Usage:", "--json", "--color", "streak", "export", "serve"} {
		if !strings.Contains(out, expected) {
			t.Errorf("--help output should contain %q: %q", expected, out)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	isolateConfig(t)

	out, _, err := executeCommand(t, "--json")
	if err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	decodeJSON(t, out, &result)
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %s", out)
	}
	if code, ok := result["code"].(float64); !ok || code != 1 {
		t.Errorf("JSON output code = %v, want 1", result["code"])
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"json", "color", "dir", "db", "debug"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag", name)
		}
	}
}

func TestRootCommand_WritesLogFile(t *testing.T) {
	configDir := isolateConfig(t)
	dir := writeJournal(t, defaultEntries()...)

	if _, _, err := executeCommand(t, "streak", "--dir", dir, "--today", "2026-01-15"); err != nil {
		t.Fatalf("streak error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(configDir, "logs")); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}

func TestRootCommand_ConfigFileJournalDir(t *testing.T) {
	configDir := isolateConfig(t)
	dir := writeJournal(t, defaultEntries()...)
	writeTestConfig(t, configDir, "journal_dir: "+dir+"\n")

	out, _, err := executeCommand(t, "streak", "--json", "--today", "2026-01-15")
	if err != nil {
		t.Fatalf("streak error = %v", err)
	}
	var result streakResult
	decodeJSON(t, out, &result)
	if result.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2 from configured journal_dir", result.CurrentStreak)
	}
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name                string
		version, commit, dt string
		want                string
	}{
		{name: "dev", version: "dev", commit: "none", dt: "unknown", want: "dev"},
		{name: "release", version: "1.0.0", commit: "abcdef1234567", dt: "2026-01-15", want: "1.0.0 (abcdef1, 2026-01-15)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit, oldDate := version, commit, date
			t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })

			version, commit, date = tt.version, tt.commit, tt.dt
			if got := buildVersion(); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
