package filtering

import (
	"context"

	"github.com/spigell/hire-screener/internal/scoring"
	"github.com/spigell/hire-screener/internal/screening"
)

type tierFilter struct {
	toggle
	min scoring.Tier
}

// NewMinTier drops candidates whose score tier is below min.
func NewMinTier(min scoring.Tier) Filter {
	return &tierFilter{min: min}
}

func (f *tierFilter) Name() string { return "min_tier" }

func (f *tierFilter) Validate() error { return nil }

func (f *tierFilter) Apply(_ context.Context, r *screening.Results) (*screening.Results, Step, error) {
	out, step := keep(r, func(c screening.Candidate) bool {
		return c.Tier() >= f.min
	})
	return out, step, nil
}

func (f *tierFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"min_tier": f.min.Label()},
	}
}
