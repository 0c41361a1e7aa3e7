package diagram

// =============================================================================
// Default Attribute Sets
// =============================================================================

// GraphAttrs returns the default graph-level attributes: orthogonal edge
// routing with generous node and rank spacing on a white background.
func GraphAttrs() Attrs {
	return Attrs{
		"splines":  "ortho",
		"nodesep":  "1.0",
		"ranksep":  "1.5",
		"fontsize": "14",
		"bgcolor":  "white",
		"pad":      "0.5",
		"compound": "true",
	}
}

// VNetClusterAttrs returns the dashed pale-blue style used for virtual
// network containers.
func VNetClusterAttrs() Attrs {
	return Attrs{
		"fontsize": "14",
		"bgcolor":  "#E8F4F8",
		"style":    "dashed",
		"margin":   "25",
		"labelloc": "t",
	}
}

// SubnetClusterAttrs returns a rounded cluster style with the given
// background color, used for subnet tiers.
func SubnetClusterAttrs(bgcolor string) Attrs {
	return Attrs{
		"fontsize": "13",
		"bgcolor":  bgcolor,
		"style":    "rounded",
		"margin":   "20",
		"labelloc": "t",
	}
}

// GroupClusterAttrs returns a tighter rounded cluster style for small
// groupings such as load balancers and availability sets.
func GroupClusterAttrs(bgcolor string) Attrs {
	return Attrs{
		"fontsize": "13",
		"bgcolor":  bgcolor,
		"style":    "rounded",
		"margin":   "15",
		"labelloc": "t",
	}
}

// Tier background colors shared by the built-in topologies.
const (
	ColorFrontendTier = "#E3F2FD" // light blue
	ColorBackendTier  = "#F3E5F5" // light purple
	ColorDataTier     = "#FFF3E0" // light amber
	ColorFirewallTier = "#FFEBEE" // light red
	ColorMonitorTier  = "#E8F5E9" // light green
)

// =============================================================================
// Node Styling
// =============================================================================

// nodeStyle maps a node kind to its Graphviz shape and fill color.
type nodeStyle struct {
	shape string
	fill  string
}

var kindStyles = map[Kind]nodeStyle{
	KindUsers:           {"oval", "#ECEFF1"},
	KindVM:              {"box3d", "#E3F2FD"},
	KindLoadBalancer:    {"diamond", "#BBDEFB"},
	KindPublicIP:        {"ellipse", "#E1F5FE"},
	KindNSG:             {"box", "#FFCDD2"},
	KindNIC:             {"box", "#F5F5F5"},
	KindAvailabilitySet: {"folder", "#C8E6C9"},
	KindSubnet:          {"folder", "#E8F4F8"},
	KindAppService:      {"component", "#E3F2FD"},
	KindFunctionApp:     {"component", "#EDE7F6"},
	KindServiceBus:      {"parallelogram", "#D1C4E9"},
	KindSQLServer:       {"cylinder", "#FFE0B2"},
	KindSQLDatabase:     {"cylinder", "#FFECB3"},
	KindStorage:         {"cylinder", "#DCEDC8"},
	KindKeyVault:        {"box", "#FFF9C4"},
	KindFirewall:        {"house", "#FFCDD2"},
	KindFrontDoor:       {"ellipse", "#B3E5FC"},
	KindAppGateway:      {"diamond", "#B2DFDB"},
	KindRouteTable:      {"note", "#F5F5F5"},
	KindLogAnalytics:    {"component", "#C8E6C9"},
	KindAppInsights:     {"component", "#C8E6C9"},
}

// defaultNodeStyle is used for kinds without an explicit mapping.
var defaultNodeStyle = nodeStyle{"box", "white"}

func styleFor(k Kind) nodeStyle {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return defaultNodeStyle
}
