package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/codec"
	"github.com/passforge/passforge-go/internal/crypto"
)

func execute(t *testing.T, input string, args ...string) (string, string, *fakeClipboard, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	clip := &fakeClipboard{}

	cmd := NewRootCommand(Options{
		In:   strings.NewReader(input),
		Out:  &out,
		Err:  &errOut,
		Copy: clip.WriteAll,
	})
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), clip, err
}

func TestGenerateCommand(t *testing.T) {
	out, errOut, _, err := execute(t, "", "generate", "--length", "20", "--count", "4", "--symbols=false")
	if err != nil {
		t.Fatalf("generate unexpected error: %v", err)
	}

	lines := strings.Fields(out)
	if len(lines) != 4 {
		t.Fatalf("expected 4 passwords, got %q", out)
	}
	for _, p := range lines {
		if len(p) != 20 {
			t.Errorf("password %q has length %d, want 20", p, len(p))
		}
		for _, c := range p {
			isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
			if !isAlnum {
				t.Errorf("unexpected symbol %q with --symbols=false", c)
			}
		}
	}
	if !strings.Contains(errOut, "Strength: ") {
		t.Errorf("expected strength on stderr, got %q", errOut)
	}
}

func TestGenerateCommandRejectsInvalidInput(t *testing.T) {
	for _, args := range [][]string{
		{"generate", "--count", "0"},
		{"generate", "--length", "-1"},
	} {
		_, _, _, err := execute(t, "", args...)
		if err == nil || err.Error() != "please enter a valid positive number" {
			t.Errorf("%v: expected invalid input error, got %v", args, err)
		}
	}
}

func TestGenerateCommandRejectsOversizedBatch(t *testing.T) {
	out, _, _, err := execute(t, "", "generate", "--count", "9223372036854775807")
	if !errors.Is(err, crypto.ErrBatchTooLarge) {
		t.Fatalf("expected ErrBatchTooLarge, got %v", err)
	}
	if out != "" {
		t.Errorf("no passwords should be printed, got %q", out)
	}
}

func TestGenerateCommandClampWarning(t *testing.T) {
	out, errOut, _, err := execute(t, "", "generate", "-l", "500")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(strings.TrimSpace(out)) != 128 {
		t.Errorf("expected a 128 character password, got %q", out)
	}
	if !strings.Contains(errOut, "Warning: Maximum allowed length is 128 characters.") {
		t.Errorf("expected clamp warning, got %q", errOut)
	}
}

func TestGenerateCommandCopy(t *testing.T) {
	out, _, clip, err := execute(t, "", "generate", "--copy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.value == "" || clip.value != strings.TrimSpace(out) {
		t.Errorf("clipboard = %q, want %q", clip.value, strings.TrimSpace(out))
	}
}

func TestGenerateCommandExportAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup")

	if _, _, _, err := execute(t, "", "generate", "-c", "2", "--export", path); err != nil {
		t.Fatalf("first export: %v", err)
	}
	if _, _, _, err := execute(t, "", "generate", "-c", "3", "--export", path+codec.Extension); err != nil {
		t.Fatalf("second export: %v", err)
	}

	entries, err := codec.ReadFile(path + codec.Extension)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("expected 5 entries after two exports, got %d", len(entries))
	}

	out, _, _, err := execute(t, "", "show", path+codec.Extension)
	if err != nil {
		t.Fatalf("show unexpected error: %v", err)
	}
	if strings.Join(strings.Fields(out), ",") != strings.Join(entries, ",") {
		t.Errorf("show printed %q, want %q", out, entries)
	}
}

func TestStrengthCommand(t *testing.T) {
	tests := map[string]string{
		"abc":      "Weak",
		"abcdef":   "Weak",
		"Abcdef1":  "Medium",
		"Abcdef1!": "Strong",
	}
	for password, want := range tests {
		out, _, _, err := execute(t, "", "strength", password)
		if err != nil {
			t.Fatalf("strength %q: %v", password, err)
		}
		if strings.TrimSpace(out) != want {
			t.Errorf("strength %q = %q, want %q", password, strings.TrimSpace(out), want)
		}
	}
}

func TestShowCommandMissingFile(t *testing.T) {
	_, _, _, err := execute(t, "", "show", filepath.Join(t.TempDir(), "missing.passforge"))
	if err == nil {
		t.Fatal("show expected error for missing file")
	}
}

func TestRootCommandRunsShell(t *testing.T) {
	out, _, _, err := execute(t, "strength Abcdef1\nexit\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Strength: Medium") {
		t.Errorf("shell output = %q", out)
	}
}
