// Package diagram provides a declarative model for architecture diagrams.
//
// A Diagram is built from labeled nodes grouped into nested clusters, with
// styled directed edges between nodes. The model carries no behavior beyond
// construction: layout is delegated entirely to Graphviz via [ToDOT] and
// [Render].
//
// # Example
//
//	d := diagram.New("Web Tier", "web_tier")
//	users := d.Node(diagram.KindUsers, "Internet Users")
//	vnet := d.Cluster("vnet-prod (10.0.0.0/16)", diagram.VNetClusterAttrs())
//	lb := vnet.Node(diagram.KindLoadBalancer, "web-lb")
//	d.Connect(users, lb, diagram.EdgeStyle{Label: "HTTPS", Color: "blue"})
package diagram

import "fmt"

// =============================================================================
// Node Kinds
// =============================================================================

// Kind is the visual category of a node. Each kind maps to a Graphviz shape
// and fill color in the emitted DOT.
type Kind string

// Node kinds covering the Azure resource types used by the built-in
// topologies.
const (
	KindUsers           Kind = "users"
	KindVM              Kind = "vm"
	KindLoadBalancer    Kind = "load_balancer"
	KindPublicIP        Kind = "public_ip"
	KindNSG             Kind = "nsg"
	KindNIC             Kind = "nic"
	KindAvailabilitySet Kind = "availability_set"
	KindSubnet          Kind = "subnet"
	KindAppService      Kind = "app_service"
	KindFunctionApp     Kind = "function_app"
	KindServiceBus      Kind = "service_bus"
	KindSQLServer       Kind = "sql_server"
	KindSQLDatabase     Kind = "sql_database"
	KindStorage         Kind = "storage"
	KindKeyVault        Kind = "key_vault"
	KindFirewall        Kind = "firewall"
	KindFrontDoor       Kind = "front_door"
	KindAppGateway      Kind = "app_gateway"
	KindRouteTable      Kind = "route_table"
	KindLogAnalytics    Kind = "log_analytics"
	KindAppInsights     Kind = "app_insights"
)

// =============================================================================
// Model Types
// =============================================================================

// Node is a labeled diagram element. Nodes carry no behavior; the label may
// span multiple lines using \n.
type Node struct {
	ID    string
	Label string
	Kind  Kind
}

// EdgeStyle holds the presentational attributes of an edge.
type EdgeStyle struct {
	Label string
	Color string // Graphviz color name or #RRGGBB; empty means default
	Style string // "solid", "dashed", "dotted"; empty means solid
}

// Edge is a directed connection between two nodes.
type Edge struct {
	From  *Node
	To    *Node
	Style EdgeStyle
}

// Attrs holds Graphviz attribute key/value pairs. Emission is sorted by key
// so output is deterministic regardless of construction order.
type Attrs map[string]string

// Cluster is a named visual grouping of nodes and nested clusters. It is a
// rendering hint only and maps to a DOT subgraph.
type Cluster struct {
	Label    string
	Attrs    Attrs
	nodes    []*Node
	children []*Cluster

	owner *Diagram
}

// Diagram is the root container: a title, a filename base, graph-level
// attributes, and the top-level nodes, clusters, and edges.
type Diagram struct {
	Title     string
	Name      string // filename base, without extension
	Direction string // rank direction, e.g. "TB" or "LR"
	Attrs     Attrs

	nodes    []*Node
	clusters []*Cluster
	edges    []Edge

	nextID int
}

// =============================================================================
// Construction
// =============================================================================

// Option configures a Diagram at construction time.
type Option func(*Diagram)

// WithDirection sets the rank direction (default "TB").
func WithDirection(dir string) Option {
	return func(d *Diagram) { d.Direction = dir }
}

// WithAttrs replaces the graph-level attributes (default [GraphAttrs]).
func WithAttrs(attrs Attrs) Option {
	return func(d *Diagram) { d.Attrs = attrs }
}

// New creates a Diagram with the given title and filename base.
func New(title, name string, opts ...Option) *Diagram {
	d := &Diagram{
		Title:     title,
		Name:      name,
		Direction: "TB",
		Attrs:     GraphAttrs(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Node adds a top-level node and returns it for use in Connect calls.
func (d *Diagram) Node(kind Kind, label string) *Node {
	n := d.newNode(kind, label)
	d.nodes = append(d.nodes, n)
	return n
}

// Cluster adds a top-level cluster with the given label and attributes.
func (d *Diagram) Cluster(label string, attrs Attrs) *Cluster {
	c := &Cluster{Label: label, Attrs: attrs, owner: d}
	d.clusters = append(d.clusters, c)
	return c
}

// Connect adds a directed edge between two nodes. Nodes may live anywhere in
// the cluster hierarchy of the same diagram.
func (d *Diagram) Connect(from, to *Node, style EdgeStyle) {
	d.edges = append(d.edges, Edge{From: from, To: to, Style: style})
}

// Node adds a node inside this cluster.
func (c *Cluster) Node(kind Kind, label string) *Node {
	n := c.owner.newNode(kind, label)
	c.nodes = append(c.nodes, n)
	return n
}

// Cluster adds a nested child cluster.
func (c *Cluster) Cluster(label string, attrs Attrs) *Cluster {
	child := &Cluster{Label: label, Attrs: attrs, owner: c.owner}
	c.children = append(c.children, child)
	return child
}

// newNode allocates a node with a diagram-unique ID. IDs are sequential so
// DOT output is stable across runs.
func (d *Diagram) newNode(kind Kind, label string) *Node {
	d.nextID++
	return &Node{
		ID:    fmt.Sprintf("n%d", d.nextID),
		Label: label,
		Kind:  kind,
	}
}

// NodeCount returns the total number of nodes, including clustered ones.
func (d *Diagram) NodeCount() int { return d.nextID }

// EdgeCount returns the number of edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// Nodes returns all nodes in insertion order, walking clusters depth-first.
func (d *Diagram) Nodes() []*Node {
	out := make([]*Node, 0, d.nextID)
	out = append(out, d.nodes...)
	for _, c := range d.clusters {
		out = c.appendNodes(out)
	}
	return out
}

// Edges returns all edges in insertion order.
func (d *Diagram) Edges() []Edge { return d.edges }

func (c *Cluster) appendNodes(out []*Node) []*Node {
	out = append(out, c.nodes...)
	for _, child := range c.children {
		out = child.appendNodes(out)
	}
	return out
}
