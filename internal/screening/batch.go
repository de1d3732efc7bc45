package screening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/hire-screener/internal/logger"
)

// DefaultWorkers is the batch concurrency used when none is configured.
const DefaultWorkers = 4

// Source yields one candidate profile. Name identifies it in failures and logs.
type Source interface {
	Name() string
	Load(ctx context.Context) (Profile, error)
}

// StaticSource is a Source over an already extracted profile.
type StaticSource struct {
	Label   string
	Profile Profile
}

func (s StaticSource) Name() string { return s.Label }

func (s StaticSource) Load(context.Context) (Profile, error) { return s.Profile, nil }

// Failure names a source that could not be turned into a candidate.
type Failure struct {
	Source string
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Source, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

func (f Failure) MarshalJSON() ([]byte, error) {
	reason := ""
	if f.Err != nil {
		reason = f.Err.Error()
	}
	return json.Marshal(map[string]string{"source": f.Source, "error": reason})
}

// Screen loads and analyzes every source with at most workers concurrent pipelines.
// Candidates come back sorted by descending score; equal scores keep input order.
// Ingestion failures are collected and never stop the batch. When ctx is canceled the
// candidates finished before cancellation are returned together with ctx.Err().
func (e *Engine) Screen(ctx context.Context, jd JobDescription, sources []Source, workers int) (*Results, error) {
	if workers < 1 {
		workers = DefaultWorkers
	}

	candidates := make([]*Candidate, len(sources))
	failures := make([]*Failure, len(sources))

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, source := range sources {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			profile, err := source.Load(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				e.logger.Warn("loading candidate failed",
					append(logger.CandidateFields("", source.Name()), zap.Error(err))...,
				)
				failures[i] = &Failure{Source: source.Name(), Err: err}
				return nil
			}

			candidate := e.Analyze(ctx, jd, NewCandidate(profile, source.Name()))
			if ctx.Err() != nil {
				return nil
			}

			candidates[i] = &candidate
			return nil
		})
	}

	_ = g.Wait()

	results := &Results{Job: jd}
	for i := range sources {
		if candidates[i] != nil {
			results.Candidates = append(results.Candidates, *candidates[i])
		}
		if failures[i] != nil {
			results.Failures = append(results.Failures, *failures[i])
		}
	}

	Rank(results.Candidates)

	e.logger.Info("screening finished",
		zap.String("job", jd.Title),
		zap.Int("sources", len(sources)),
		zap.Int("candidates", len(results.Candidates)),
		zap.Int("failures", len(results.Failures)),
	)

	return results, ctx.Err()
}

// Rank sorts candidates by descending score in place. Ties keep their relative order.
func Rank(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CurrentScore > candidates[j].CurrentScore
	})
}
