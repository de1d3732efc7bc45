package filtering

import (
	"context"
	"fmt"

	"github.com/spigell/hire-screener/internal/screening"
)

type excludeFileFilter struct {
	toggle
	path string
}

// NewExcludeFile drops candidates already recorded in the reviewed-candidates file at path.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{path: path}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Validate() error { return nil }

func (f *excludeFileFilter) Apply(_ context.Context, r *screening.Results) (*screening.Results, Step, error) {
	if f.path == "" {
		return r, Step{Initial: r.Len(), Dropped: 0, Left: r.Len()}, nil
	}

	reviewed, err := screening.ReviewedFromFile(f.path)
	if err != nil {
		return r, Step{}, fmt.Errorf("getting reviewed candidates from file: %w", err)
	}

	out, step := keep(r, func(c screening.Candidate) bool {
		return !reviewed.Contains(c)
	})
	return out, step, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
