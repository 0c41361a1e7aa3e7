package diagram

import (
	"strings"
	"testing"
)

func TestToDOT_Basic(t *testing.T) {
	d := New("Test Architecture", "test_arch")
	a := d.Node(KindUsers, "Internet Users")
	b := d.Node(KindVM, "web-vm-0")
	d.Connect(a, b, EdgeStyle{Label: "HTTPS", Color: "blue"})

	dot := ToDOT(d)

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `label="Test Architecture"`) {
		t.Error("ToDOT() output missing diagram title")
	}
	if !strings.Contains(dot, `"Internet Users"`) {
		t.Error("ToDOT() output missing node label")
	}
	if !strings.Contains(dot, `"n1" -> "n2"`) {
		t.Error("ToDOT() output missing edge")
	}
	if !strings.Contains(dot, `label="HTTPS"`) {
		t.Error("ToDOT() output missing edge label")
	}
	if !strings.Contains(dot, `color="blue"`) {
		t.Error("ToDOT() output missing edge color")
	}
}

func TestToDOT_NestedClusters(t *testing.T) {
	d := New("Clustered", "clustered")
	vnet := d.Cluster("vnet (10.0.0.0/16)", VNetClusterAttrs())
	subnet := vnet.Cluster("frontend (10.0.0.0/24)", SubnetClusterAttrs(ColorFrontendTier))
	subnet.Node(KindVM, "vm-0")

	dot := ToDOT(d)

	if !strings.Contains(dot, "subgraph cluster_0") {
		t.Error("ToDOT() output missing outer cluster")
	}
	if !strings.Contains(dot, "subgraph cluster_1") {
		t.Error("ToDOT() output missing nested cluster")
	}
	if !strings.Contains(dot, `label="vnet (10.0.0.0/16)"`) {
		t.Error("ToDOT() output missing cluster label")
	}
	if !strings.Contains(dot, `style="dashed"`) {
		t.Error("ToDOT() output missing vnet cluster style")
	}
	// The nested cluster must be emitted inside the outer one.
	outer := strings.Index(dot, "subgraph cluster_0")
	inner := strings.Index(dot, "subgraph cluster_1")
	closing := strings.LastIndex(dot, "  }")
	if !(outer < inner && inner < closing) {
		t.Error("ToDOT() nested cluster not emitted inside its parent")
	}
}

func TestToDOT_EdgeStyles(t *testing.T) {
	tests := []struct {
		name  string
		style EdgeStyle
		want  []string
	}{
		{"plain", EdgeStyle{Label: "API"}, []string{`label="API"`}},
		{"dotted green", EdgeStyle{Label: "Member", Style: "dotted", Color: "green"},
			[]string{`style="dotted"`, `color="green"`, `fontcolor="green"`}},
		{"dashed gray", EdgeStyle{Label: "RDP/Management", Style: "dashed", Color: "gray"},
			[]string{`style="dashed"`, `color="gray"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New("t", "t")
			a := d.Node(KindVM, "a")
			b := d.Node(KindVM, "b")
			d.Connect(a, b, tt.style)

			dot := ToDOT(d)
			for _, want := range tt.want {
				if !strings.Contains(dot, want) {
					t.Errorf("ToDOT() missing %q in edge attributes", want)
				}
			}
		})
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	build := func() string {
		d := New("Stable", "stable")
		c := d.Cluster("tier", SubnetClusterAttrs(ColorDataTier))
		a := c.Node(KindSQLServer, "sqlsrv")
		b := c.Node(KindSQLDatabase, "sqldb")
		d.Connect(a, b, EdgeStyle{Label: "hosts"})
		return ToDOT(d)
	}

	first := build()
	for i := 0; i < 10; i++ {
		if got := build(); got != first {
			t.Fatalf("ToDOT() output not deterministic on run %d", i)
		}
	}
}

func TestToDOT_MultilineLabels(t *testing.T) {
	d := New("t", "t")
	d.Node(KindVM, "cust1webSrv0\nWindows Server 2022")

	dot := ToDOT(d)
	if !strings.Contains(dot, `"cust1webSrv0\nWindows Server 2022"`) {
		t.Error("ToDOT() multi-line label not escaped as \\n")
	}
}

func TestNodeCounts(t *testing.T) {
	d := New("t", "t")
	d.Node(KindUsers, "u")
	c := d.Cluster("c", nil)
	c.Node(KindVM, "v")
	nested := c.Cluster("n", nil)
	nested.Node(KindNIC, "nic")

	if got := d.NodeCount(); got != 3 {
		t.Errorf("NodeCount() = %d, want 3", got)
	}
	if got := len(d.Nodes()); got != 3 {
		t.Errorf("len(Nodes()) = %d, want 3", got)
	}
}
