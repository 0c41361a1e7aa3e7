package topology

import (
	"fmt"

	"github.com/utkloud/archdiagrams/pkg/diagram"
)

// Tier names recognized in a palette.
const (
	TierFrontend   = "frontend"
	TierBackend    = "backend"
	TierData       = "data"
	TierFirewall   = "firewall"
	TierMonitoring = "monitoring"
)

// Palette maps tier names to cluster background colors. Tiers absent from
// the map keep their built-in color, so a partial palette only overrides
// what it names.
type Palette map[string]string

// DefaultPalette returns the built-in tier colors.
func DefaultPalette() Palette {
	return Palette{
		TierFrontend:   diagram.ColorFrontendTier,
		TierBackend:    diagram.ColorBackendTier,
		TierData:       diagram.ColorDataTier,
		TierFirewall:   diagram.ColorFirewallTier,
		TierMonitoring: diagram.ColorMonitorTier,
	}
}

// knownTiers is the set of tier names a palette may override.
var knownTiers = map[string]bool{
	TierFrontend:   true,
	TierBackend:    true,
	TierData:       true,
	TierFirewall:   true,
	TierMonitoring: true,
}

// Validate checks that every palette key names a known tier.
func (p Palette) Validate() error {
	for tier := range p {
		if !knownTiers[tier] {
			return fmt.Errorf("unknown palette tier %q (known: frontend, backend, data, firewall, monitoring)", tier)
		}
	}
	return nil
}

// merge overlays p onto the defaults.
func (p Palette) merge() Palette {
	out := DefaultPalette()
	for tier, color := range p {
		out[tier] = color
	}
	return out
}

// color returns the color for a tier, falling back to the built-in.
func (p Palette) color(tier string) string {
	if c, ok := p[tier]; ok {
		return c
	}
	return DefaultPalette()[tier]
}
