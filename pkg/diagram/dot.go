package diagram

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ToDOT converts a diagram to Graphviz DOT format. Output is deterministic:
// nodes and edges appear in insertion order, attribute maps are emitted in
// sorted key order.
//
// Clusters become nested "subgraph cluster_N" blocks so the dot engine draws
// them as labeled boxes around their members.
func ToDOT(d *Diagram) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", d.Title)
	buf.WriteString("  labelloc=\"t\";\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", d.Direction)
	for _, k := range slices.Sorted(maps.Keys(d.Attrs)) {
		fmt.Fprintf(&buf, "  %s=%q;\n", k, d.Attrs[k])
	}
	buf.WriteString("  node [style=\"rounded,filled\", fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range d.nodes {
		writeNode(&buf, n, 1)
	}

	counter := 0
	for _, c := range d.clusters {
		writeCluster(&buf, c, 1, &counter)
	}

	buf.WriteString("\n")
	for _, e := range d.edges {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From.ID, e.To.ID, strings.Join(edgeAttrs(e.Style), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, c *Cluster, depth int, counter *int) {
	pad := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, "%ssubgraph cluster_%d {\n", pad, *counter)
	*counter++

	fmt.Fprintf(buf, "%s  label=%q;\n", pad, c.Label)
	for _, k := range slices.Sorted(maps.Keys(c.Attrs)) {
		fmt.Fprintf(buf, "%s  %s=%q;\n", pad, k, c.Attrs[k])
	}
	for _, n := range c.nodes {
		writeNode(buf, n, depth+1)
	}
	for _, child := range c.children {
		writeCluster(buf, child, depth+1, counter)
	}
	fmt.Fprintf(buf, "%s}\n", pad)
}

func writeNode(buf *bytes.Buffer, n *Node, depth int) {
	pad := strings.Repeat("  ", depth)
	s := styleFor(n.Kind)
	fmt.Fprintf(buf, "%s%q [label=%q, shape=%s, fillcolor=%q];\n", pad, n.ID, n.Label, s.shape, s.fill)
}

func edgeAttrs(s EdgeStyle) []string {
	attrs := []string{fmt.Sprintf("label=%q", s.Label)}
	if s.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", s.Color), fmt.Sprintf("fontcolor=%q", s.Color))
	}
	if s.Style != "" {
		attrs = append(attrs, fmt.Sprintf("style=%q", s.Style))
	}
	return attrs
}
