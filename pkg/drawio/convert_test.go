package drawio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeFakeTool drops an executable script named graphviz2drawio into a fresh
// directory and points PATH at it.
func writeFakeTool(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts require a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, ToolName)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	// Prepend so the fake tool wins but the script can still find cp etc.
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestConvert_ToolNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // empty PATH: tool cannot be found

	err := Convert(context.Background(), "in.dot", "out.drawio")
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("Convert() error = %v, want ErrToolNotFound", err)
	}
	// The message must carry the install hint.
	if !strings.Contains(err.Error(), "pip install") {
		t.Errorf("Convert() error %q missing install hint", err)
	}
}

func TestConvert_Success(t *testing.T) {
	// Fake tool copies its input to the -o target, like the real converter.
	writeFakeTool(t, `in="$1"; shift; while [ "$1" != "-o" ]; do shift; done; cp "$in" "$2"`)

	dir := t.TempDir()
	dotPath := filepath.Join(dir, "arch.dot")
	outPath := filepath.Join(dir, "arch.drawio")
	if err := os.WriteFile(dotPath, []byte("digraph G {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Convert(context.Background(), dotPath, outPath); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestConvert_ToolFailure(t *testing.T) {
	writeFakeTool(t, `echo "bad input" >&2; exit 3`)

	err := Convert(context.Background(), "in.dot", "out.drawio")
	if !errors.Is(err, ErrConvertFailed) {
		t.Fatalf("Convert() error = %v, want ErrConvertFailed", err)
	}
	if !strings.Contains(err.Error(), "bad input") {
		t.Errorf("Convert() error %q missing captured stderr", err)
	}
}

func TestConverter_ToolOverride(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	conv := Converter{Tool: "definitely-not-installed"}
	err := conv.Convert(context.Background(), "in.dot", "out.drawio")
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Convert() error = %v, want ErrToolNotFound", err)
	}
}
