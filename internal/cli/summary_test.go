package cli

import (
	"strings"
	"testing"

	"github.com/utkloud/archdiagrams/pkg/summary"
	"github.com/utkloud/archdiagrams/pkg/topology"
)

func TestPrintRecap(t *testing.T) {
	var sb strings.Builder
	if err := printRecap(&sb, topology.ThreeTierName); err != nil {
		t.Fatalf("printRecap() error = %v", err)
	}
	got := sb.String()

	// Title line first, then the recap block untouched.
	if !strings.Contains(got, "IIS + SQL Server 3-Tier Architecture") {
		t.Errorf("recap missing title line, got:\n%s", got)
	}
	block, err := summary.For(topology.ThreeTierName)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got, block+"\n") {
		t.Error("recap block should follow the title unmodified")
	}
}

func TestPrintRecap_Unknown(t *testing.T) {
	var sb strings.Builder
	if err := printRecap(&sb, "nope"); err == nil {
		t.Error("printRecap() with unknown topology should fail")
	}
}
