// Package drawio converts generated DOT files into the Draw.io diagram
// format.
//
// The primary path shells out to the graphviz2drawio tool, which preserves
// the Graphviz layout. A built-in fallback exporter ([WriteNative]) produces
// a minimal mxGraph document without layout information for environments
// where the tool is not installed.
package drawio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ToolName is the external conversion executable.
const ToolName = "graphviz2drawio"

// Sentinel errors distinguishing the two converter failure modes.
var (
	// ErrToolNotFound indicates graphviz2drawio is not on PATH.
	ErrToolNotFound = errors.New(ToolName + " not found. Install with: pip install " + ToolName)

	// ErrConvertFailed indicates the tool ran but exited non-zero.
	ErrConvertFailed = errors.New(ToolName + " failed")
)

// Converter runs DOT to Draw.io conversions.
type Converter struct {
	// Tool overrides the executable name. Empty means [ToolName].
	Tool string
}

// Convert transforms dotPath into a Draw.io file at outPath by invoking the
// conversion tool. The subprocess inherits ctx, so cancelling the context
// kills a hung conversion.
//
// Returns an error wrapping [ErrToolNotFound] if the tool is not installed,
// or [ErrConvertFailed] with captured stderr if it exits non-zero.
func (c Converter) Convert(ctx context.Context, dotPath, outPath string) error {
	tool := c.Tool
	if tool == "" {
		tool = ToolName
	}

	if _, err := exec.LookPath(tool); err != nil {
		return fmt.Errorf("%w", ErrToolNotFound)
	}

	cmd := exec.CommandContext(ctx, tool, dotPath, "-o", outPath)

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(errBuf.Bytes()); len(msg) > 0 {
			return fmt.Errorf("%w: %v: %s", ErrConvertFailed, err, msg)
		}
		return fmt.Errorf("%w: %v", ErrConvertFailed, err)
	}
	return nil
}

// Convert runs a conversion with the default tool.
func Convert(ctx context.Context, dotPath, outPath string) error {
	return Converter{}.Convert(ctx, dotPath, outPath)
}
