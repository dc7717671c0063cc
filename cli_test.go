// ABOUTME: Tests for the discipline-ranker subcommands
// ABOUTME: Runs the cobra command tree against ranking files in temp dirs

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"discipline-ranker/config"
	"discipline-ranker/ranking"
	"discipline-ranker/reorder"
)

func writeSampleRanking(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ranking.toml")
	r := ranking.Ranking{
		Title: "Sample",
		Disciplines: []ranking.Discipline{
			{ID: "alg", Name: "Algorithms", Code: "CS201", Credits: 6, Priority: 1},
			{ID: "db", Name: "Databases", Priority: 2},
			{ID: "net", Name: "Networks", Priority: 3},
		},
	}

	if err := ranking.WriteRanking(path, r); err != nil {
		t.Fatalf("WriteRanking failed: %v", err)
	}

	return path
}

// executeCmd runs the root command with a config path that does not exist
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))

	err := root.Execute()

	return buf.String(), err
}

func rankingOrder(t *testing.T, path string) []string {
	t.Helper()

	r, err := ranking.ReadRanking(path)
	if err != nil {
		t.Fatalf("ReadRanking failed: %v", err)
	}

	ids := make([]string, len(r.Disciplines))
	for i, d := range r.Disciplines {
		ids[i] = d.ID
	}

	return ids
}

func TestListCommand(t *testing.T) {
	path := writeSampleRanking(t)

	out, err := executeCmd(t, "list", path)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, want := range []string{"Sample", "CS201", "Algorithms", "Networks", "CREDITS"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestListCommand_Plain(t *testing.T) {
	path := writeSampleRanking(t)

	out, err := executeCmd(t, "list", "--plain", path)
	if err != nil {
		t.Fatalf("list --plain failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}

	r, err := ranking.ReadRanking(path)
	if err != nil {
		t.Fatal(err)
	}

	if lines[0] != r.Disciplines[0].String() {
		t.Errorf("first line = %q, want %q", lines[0], r.Disciplines[0].String())
	}

	if strings.Contains(out, "CREDITS") {
		t.Errorf("plain output should have no table header:\n%s", out)
	}
}

func TestMoveCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"after later row", []string{"alg", "--after", "net"}, []string{"db", "net", "alg"}},
		{"before earlier row", []string{"net", "--before", "alg"}, []string{"net", "alg", "db"}},
		{"before next row is a no-op", []string{"alg", "--before", "db"}, []string{"alg", "db", "net"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSampleRanking(t)

			if _, err := executeCmd(t, append([]string{"move", path}, tt.args...)...); err != nil {
				t.Fatalf("move failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, rankingOrder(t, path)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no target", []string{"alg"}, nil},
		{"both targets", []string{"alg", "--before", "db", "--after", "net"}, nil},
		{"same item", []string{"alg", "--after", "alg"}, reorder.ErrInvalidOperation},
		{"unknown item", []string{"zzz", "--after", "alg"}, ranking.ErrNotFound},
		{"unknown target", []string{"alg", "--after", "zzz"}, ranking.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSampleRanking(t)

			_, err := executeCmd(t, append([]string{"move", path}, tt.args...)...)
			if err == nil {
				t.Fatal("expected error")
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}

			if diff := cmp.Diff([]string{"alg", "db", "net"}, rankingOrder(t, path)); diff != "" {
				t.Errorf("failed move changed the file (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetPriorityCommand(t *testing.T) {
	path := writeSampleRanking(t)

	if _, err := executeCmd(t, "set-priority", path, "alg", "3"); err != nil {
		t.Fatalf("set-priority failed: %v", err)
	}

	if diff := cmp.Diff([]string{"db", "net", "alg"}, rankingOrder(t, path)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	if _, err := executeCmd(t, "set-priority", path, "alg", "soon"); !errors.Is(err, reorder.ErrInvalidPriority) {
		t.Errorf("error = %v, want ErrInvalidPriority", err)
	}

	if _, err := executeCmd(t, "set-priority", path, "zzz", "1"); !errors.Is(err, ranking.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	// Clamped to 0, which sorts first
	if _, err := executeCmd(t, "set-priority", path, "net", "--", "-7"); err != nil {
		t.Fatalf("set-priority with negative value failed: %v", err)
	}

	if diff := cmp.Diff([]string{"net", "db", "alg"}, rankingOrder(t, path)); diff != "" {
		t.Errorf("order after clamp mismatch (-want +got):\n%s", diff)
	}
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "spring.txt")
	rankingPath := filepath.Join(dir, "spring.toml")

	list := "# disciplines\nCS201 | Algorithms | 6\nDatabases\n"
	if err := os.WriteFile(listPath, []byte(list), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := executeCmd(t, "import", listPath, rankingPath)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if !strings.Contains(out, "Imported 2 disciplines") {
		t.Errorf("unexpected output: %s", out)
	}

	r, err := ranking.ReadRanking(rankingPath)
	if err != nil {
		t.Fatalf("ReadRanking failed: %v", err)
	}

	if r.Title != "spring" || len(r.Disciplines) != 2 || r.Disciplines[0].Code != "CS201" {
		t.Errorf("unexpected ranking: %+v", r)
	}

	if _, err := executeCmd(t, "import", listPath, rankingPath); err == nil {
		t.Error("import over an existing file should fail without --force")
	}

	if _, err := executeCmd(t, "import", "--force", "--title", "Again", listPath, rankingPath); err != nil {
		t.Errorf("import --force failed: %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	path := writeSampleRanking(t)

	out, err := executeCmd(t, "export", path)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if !strings.Contains(out, "disciplines:") || !strings.Contains(out, "name: Algorithms") {
		t.Errorf("unexpected yaml:\n%s", out)
	}

	out, err = executeCmd(t, "export", "-f", "json", path)
	if err != nil {
		t.Fatalf("export json failed: %v", err)
	}

	if !strings.Contains(out, `"name": "Databases"`) {
		t.Errorf("unexpected json:\n%s", out)
	}

	if _, err := executeCmd(t, "export", "-f", "xml", path); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestDebugFlagWritesLog(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeSampleRanking(t)

	if _, err := executeCmd(t, "--debug", "move", path, "db", "--before", "alg"); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	data, err := os.ReadFile(debugLogFile)
	if err != nil {
		t.Fatalf("debug log missing: %v", err)
	}

	if !strings.Contains(string(data), "ranking updated") {
		t.Errorf("debug log missing update entry:\n%s", data)
	}
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	path := writeSampleRanking(t)

	cfgPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(cfgPath, []byte("undo_limit = 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer

	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"--config", cfgPath, "list", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Warning") {
		t.Errorf("expected config warning, got:\n%s", buf.String())
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")

	out, err := executeCmd(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	if !strings.Contains(out, path) {
		t.Errorf("output should name the written file:\n%s", out)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}

	if cfg != config.DefaultConfig() {
		t.Errorf("written config = %+v, want defaults", cfg)
	}

	if _, err := executeCmd(t, "--config", path, "config", "init"); err == nil {
		t.Error("second init without --force should fail")
	}

	if _, err := executeCmd(t, "--config", path, "config", "init", "--force"); err != nil {
		t.Errorf("init --force failed: %v", err)
	}

	out, err = executeCmd(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	for _, want := range []string{"undo_limit = 50", "handle_width = 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}
