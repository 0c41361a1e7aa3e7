package diagram

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid png", []string{"png"}, false},
		{"valid svg", []string{"svg"}, false},
		{"valid dot", []string{"dot"}, false},
		{"valid multiple", []string{"png", "dot"}, false},
		{"invalid format", []string{"pdf"}, true},
		{"mixed valid invalid", []string{"png", "nope"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestRender_WritesFiles(t *testing.T) {
	d := New("Render Test", "render_test")
	a := d.Node(KindUsers, "users")
	b := d.Node(KindLoadBalancer, "lb")
	d.Connect(a, b, EdgeStyle{Label: "HTTPS"})

	dir := filepath.Join(t.TempDir(), "diagrams")
	paths, err := Render(context.Background(), d, dir, []string{FormatPNG, FormatDOT})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Render() returned %d paths, want 2", len(paths))
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected output file %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("output file %s is empty", path)
		}
	}

	dot, err := os.ReadFile(filepath.Join(dir, "render_test.dot"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), `"users"`) {
		t.Error("DOT file missing node label")
	}
}

func TestRender_InvalidFormat(t *testing.T) {
	d := New("t", "t")
	if _, err := Render(context.Background(), d, t.TempDir(), []string{"bmp"}); err == nil {
		t.Error("Render() with invalid format should fail")
	}
}

func TestDOTPath(t *testing.T) {
	d := New("t", "bicep_iis_sql_3tier")
	got := DOTPath(d, "diagrams")
	want := filepath.Join("diagrams", "bicep_iis_sql_3tier.dot")
	if got != want {
		t.Errorf("DOTPath() = %q, want %q", got, want)
	}
}
