package diagram

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-graphviz"
)

// Output formats supported by [Render].
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{FormatPNG: true, FormatSVG: true, FormatDOT: true}

// ValidateFormats checks that all requested formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'png', 'svg', or 'dot')", f)
		}
	}
	return nil
}

// Render writes the diagram to dir in each requested format and returns the
// written paths in format order. The DOT file is the emitter output verbatim;
// PNG and SVG are produced by the embedded Graphviz dot engine, so no system
// graphviz installation is required.
//
// The output directory is created if it does not exist.
func Render(ctx context.Context, d *Diagram, dir string, formats []string) ([]string, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	dot := ToDOT(d)
	paths := make([]string, 0, len(formats))

	for _, format := range formats {
		path := filepath.Join(dir, d.Name+"."+format)

		var data []byte
		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatPNG:
			b, err := renderImage(ctx, dot, graphviz.PNG)
			if err != nil {
				return paths, fmt.Errorf("render %s: %w", path, err)
			}
			data = b
		case FormatSVG:
			b, err := renderImage(ctx, dot, graphviz.SVG)
			if err != nil {
				return paths, fmt.Errorf("render %s: %w", path, err)
			}
			data = b
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// DOTPath returns the path the DOT file would be written to by [Render].
func DOTPath(d *Diagram, dir string) string {
	return filepath.Join(dir, d.Name+"."+FormatDOT)
}

// renderImage lays out the DOT source and renders it in the given format.
func renderImage(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
