package filtering

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spigell/hire-screener/internal/screening"
)

type minScoreFilter struct {
	toggle
	min float64
}

// NewMinScore drops candidates scoring below min.
func NewMinScore(min float64) Filter {
	return &minScoreFilter{min: min}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Validate() error {
	if f.min < 0 || f.min > 100 {
		return fmt.Errorf("minimum score %.1f is outside [0,100]", f.min)
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, r *screening.Results) (*screening.Results, Step, error) {
	out, step := keep(r, func(c screening.Candidate) bool {
		return c.CurrentScore >= f.min
	})
	return out, step, nil
}

func (f *minScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"min_score": strconv.FormatFloat(f.min, 'f', 1, 64)},
	}
}
