package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestConfig creates a config file pointing at per-test temp dirs and
// returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	path := filepath.Join(base, "inkwell.toml")
	contents := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q
api_bind = "127.0.0.1:0"
`, filepath.Join(base, "data"), filepath.Join(base, "logs"))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return path
}

func runCommand(t *testing.T, configPath string, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestDaySaveAndShow(t *testing.T) {
	cfgPath := writeTestConfig(t)

	runCommand(t, cfgPath, "day", "save", "2026-03-14", "--title", "pi day", "--content", "baked a pie", "--tag", "baking")

	out := runCommand(t, cfgPath, "day", "show", "2026-03-14")
	if !strings.Contains(out, "pi day") || !strings.Contains(out, "baked a pie") {
		t.Fatalf("unexpected output: %s", out)
	}

	out = runCommand(t, cfgPath, "day", "show", "2026-03-15")
	if !strings.Contains(out, "No entry for 2026-03-15") {
		t.Fatalf("unexpected output for missing day: %s", out)
	}
}

func TestSpreadSaveAndShow(t *testing.T) {
	cfgPath := writeTestConfig(t)

	elements := filepath.Join(t.TempDir(), "elements.json")
	payload := `{"elements":[
		{"pageSide":"left","type":"photo","x":0.5,"y":0.5,"w":0.2,"h":0.15,"zIndex":1},
		{"pageSide":"right","type":"sticky_note","text":"call mom","x":0.1,"y":0.2,"w":0.1,"h":0.1,"zIndex":2}
	]}`
	if err := os.WriteFile(elements, []byte(payload), 0o644); err != nil {
		t.Fatalf("write elements file: %v", err)
	}

	out := runCommand(t, cfgPath, "spread", "save", "2026", "3", "--file", elements)
	if !strings.Contains(out, "Saved 2 elements") {
		t.Fatalf("unexpected save output: %s", out)
	}

	out = runCommand(t, cfgPath, "spread", "show", "2026", "3")
	if !strings.Contains(out, "photo") || !strings.Contains(out, "sticky_note") {
		t.Fatalf("unexpected show output: %s", out)
	}
}

func TestEntryAndMonthCommands(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out := runCommand(t, cfgPath, "entry", "add", "2026-03-20", "--title", "morning pages", "--quote", "a good day")
	if !strings.Contains(out, "Created entry") {
		t.Fatalf("unexpected add output: %s", out)
	}
	runCommand(t, cfgPath, "entry", "add", "2026-03-20", "--title", "lunch")
	runCommand(t, cfgPath, "entry", "add", "2026-03-20", "--title", "dinner")

	out = runCommand(t, cfgPath, "month", "2026", "3")
	if !strings.Contains(out, "2026-03-20") {
		t.Fatalf("expected the day in the summary: %s", out)
	}
	if !strings.Contains(out, "a good day") {
		t.Fatalf("expected the summary quote: %s", out)
	}
	if !strings.Contains(out, "yes") {
		t.Fatalf("expected a busy day marker: %s", out)
	}
}

func TestDecorCommands(t *testing.T) {
	cfgPath := writeTestConfig(t)

	runCommand(t, cfgPath, "decor", "set", "2026", "3", "left", "--kind", "washi", "--key", "top", "--x", "0.1", "--z", "1")
	out := runCommand(t, cfgPath, "decor", "list", "2026", "3", "left")
	if !strings.Contains(out, "washi") || !strings.Contains(out, "top") {
		t.Fatalf("unexpected decor list output: %s", out)
	}
}

func TestSmudgeCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out := runCommand(t, cfgPath, "day", "smudge", "2026-03-14", "--preset", "ring", "--x", "0.3", "--y", "0.7")
	if !strings.Contains(out, "Set ring smudge") {
		t.Fatalf("unexpected smudge output: %s", out)
	}
	out = runCommand(t, cfgPath, "day", "smudge", "2026-03-14", "--clear")
	if !strings.Contains(out, "Cleared smudge") {
		t.Fatalf("unexpected clear output: %s", out)
	}
}
