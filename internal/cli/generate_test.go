package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/utkloud/archdiagrams/pkg/drawio"
)

func TestFormatList(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		want    string
	}{
		{"empty", nil, ""},
		{"single", []string{"png"}, "PNG"},
		{"pair", []string{"png", "dot"}, "PNG and DOT"},
		{"triple", []string{"png", "svg", "dot"}, "PNG, SVG and DOT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatList(tt.formats); got != tt.want {
				t.Errorf("formatList(%v) = %q, want %q", tt.formats, got, tt.want)
			}
		})
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error = %v", err)
	}
	if cfg.OutputDir != "diagrams" {
		t.Errorf("OutputDir = %q, want diagrams", cfg.OutputDir)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	if err := os.WriteFile(path, []byte(`output_dir = "out"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want out", cfg.OutputDir)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loadConfig() with missing file should fail")
	}
}

// runGenerateCmd executes the generate command with args, capturing the
// status lines printed along the way.
func runGenerateCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	old := uiOut
	uiOut = &buf
	t.Cleanup(func() { uiOut = old })

	cmd := newGenerateCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeFakeConverter installs a shell script named after the conversion tool
// ahead of everything else on PATH.
func writeFakeConverter(t *testing.T, script string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, drawio.ToolName)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	// Prepend so the fake tool wins but the script can still find cp etc.
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestGenerateCmd_ToolMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // no conversion tool anywhere
	out := t.TempDir()

	got, err := runGenerateCmd(t, "threetier", "-f", "dot", "-o", out, "--summary=false")
	if err != nil {
		t.Fatalf("generate with missing tool should exit clean, got %v", err)
	}
	if !strings.Contains(got, "pip install") {
		t.Errorf("output missing install hint, got:\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(out, "bicep_iis_sql_3tier.dot")); err != nil {
		t.Errorf("DOT file missing: %v", err)
	}
}

func TestGenerateCmd_ToolFailure(t *testing.T) {
	writeFakeConverter(t, `echo "bad input" >&2; exit 3`)
	out := t.TempDir()

	got, err := runGenerateCmd(t, "threetier", "-f", "dot", "-o", out, "--summary=false")
	if err != nil {
		t.Fatalf("generate with failing tool should exit clean, got %v", err)
	}
	if !strings.Contains(got, "Failed to convert to Draw.io format") {
		t.Errorf("output missing conversion failure line, got:\n%s", got)
	}
}

func TestGenerateCmd_ConvertSuccess(t *testing.T) {
	writeFakeConverter(t, `in="$1"; shift; while [ "$1" != "-o" ]; do shift; done; cp "$in" "$2"`)
	out := t.TempDir()

	got, err := runGenerateCmd(t, "threetier", "-f", "dot", "-o", out, "--summary=false")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(got, "Draw.io file generated") {
		t.Errorf("output missing conversion success line, got:\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(out, "bicep_iis_sql_3tier.drawio")); err != nil {
		t.Errorf("Draw.io file missing: %v", err)
	}
}

func TestGenerateCmd_NativeFallback(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	out := t.TempDir()

	got, err := runGenerateCmd(t, "threetier", "-f", "dot", "-o", out, "--summary=false", "--native")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(got, "built-in exporter") {
		t.Errorf("output missing fallback line, got:\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(out, "bicep_iis_sql_3tier.drawio")); err != nil {
		t.Errorf("Draw.io file missing: %v", err)
	}
}
