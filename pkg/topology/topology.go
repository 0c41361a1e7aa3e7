// Package topology defines the built-in Azure deployment topologies.
//
// Each topology is a fixed, declarative construction of nodes, clusters, and
// edges; there is no runtime configurability of the graph structure. New
// topologies register a builder by name.
package topology

import (
	"fmt"
	"sort"

	"github.com/utkloud/archdiagrams/pkg/diagram"
)

// Builder constructs a complete diagram for one topology, coloring its tier
// clusters from the given palette.
type Builder func(p Palette) *diagram.Diagram

// Topology names.
const (
	ThreeTierName = "threetier"
	ContosoName   = "contoso"
)

var builders = map[string]Builder{
	ThreeTierName: ThreeTier,
	ContosoName:   Contoso,
}

// Names returns the registered topology names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the diagram for the named topology with the default palette.
func Build(name string) (*diagram.Diagram, error) {
	return BuildWith(name, nil)
}

// BuildWith returns the diagram for the named topology, with any tier colors
// in p overriding the defaults.
func BuildWith(name string, p Palette) (*diagram.Diagram, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown topology: %s (available: %v)", name, Names())
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return b(p.merge()), nil
}
