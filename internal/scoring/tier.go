package scoring

import (
	"fmt"
	"strings"
)

// Score tier thresholds. Reports, filters and the CLI badge all read them from here.
const (
	ExcellentThreshold = 70.0
	PotentialThreshold = 40.0
)

// Tier is a recommendation band derived from a score.
type Tier int

const (
	TierLow Tier = iota
	TierPotential
	TierExcellent
)

// TierOf maps a score in [0,100] to its tier.
func TierOf(score float64) Tier {
	switch {
	case score >= ExcellentThreshold:
		return TierExcellent
	case score >= PotentialThreshold:
		return TierPotential
	default:
		return TierLow
	}
}

// String returns the recommendation wording used in reports.
func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "EXCELLENT MATCH"
	case TierPotential:
		return "POTENTIAL MATCH"
	default:
		return "LOW MATCH"
	}
}

// Label is the short lowercase name used in config and flags.
func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierPotential:
		return "potential"
	default:
		return "low"
	}
}

// ParseTier accepts the labels produced by Label.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excellent":
		return TierExcellent, nil
	case "potential":
		return TierPotential, nil
	case "low", "":
		return TierLow, nil
	default:
		return TierLow, fmt.Errorf("unknown tier %q", s)
	}
}
