package filtering

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/hire-screener/internal/scoring"
	"github.com/spigell/hire-screener/internal/screening"
)

func candidate(name, email string, score float64, skills ...string) screening.Candidate {
	return screening.NewCandidate(screening.Profile{Name: name, Email: email}, name).WithResult(screening.Result{
		Score:     score,
		AllSkills: skills,
	})
}

func batch() *screening.Results {
	return &screening.Results{Candidates: []screening.Candidate{
		candidate("alice", "alice@example.com", 90, "java", "docker"),
		candidate("bob", "bob@example.com", 55, "java"),
		candidate("carol", screening.NotFound, 20, "react"),
	}}
}

func names(r *screening.Results) []string {
	out := make([]string, 0, r.Len())
	for _, c := range r.Candidates {
		out = append(out, c.Name)
	}
	return out
}

func TestMinScore(t *testing.T) {
	out, step, err := NewMinScore(55).Apply(context.Background(), batch())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, names(out))
	assert.Equal(t, Step{Initial: 3, Dropped: 1, Left: 2}, step)

	assert.Error(t, NewMinScore(120).Validate())
}

func TestMinTierUsesSharedThresholds(t *testing.T) {
	out, _, err := NewMinTier(scoring.TierExcellent).Apply(context.Background(), batch())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names(out))

	out, _, err = NewMinTier(scoring.TierPotential).Apply(context.Background(), batch())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, names(out))
}

func TestRequiredSkills(t *testing.T) {
	out, step, err := NewRequiredSkills([]string{" Java ", "docker"}).Apply(context.Background(), batch())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names(out))
	assert.Equal(t, 2, step.Dropped)

	assert.Error(t, NewRequiredSkills(nil).Validate())
}

func TestExcludeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewed.json")
	reviewed := &screening.Reviewed{Items: []*screening.ReviewedCandidate{{Name: "bob", Email: "bob@example.com"}}}
	require.NoError(t, reviewed.ToFile(path))

	out, step, err := NewExcludeFile(path).Apply(context.Background(), batch())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "carol"}, names(out))
	assert.Equal(t, 1, step.Dropped)

	out, step, err = NewExcludeFile("").Apply(context.Background(), batch())
	require.NoError(t, err)
	assert.Equal(t, 3, out.Len())
	assert.Zero(t, step.Dropped)
}

func TestRunFiltersSkipsDisabledAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	required := NewRequiredSkills(nil)
	required.Disable("no skills configured")

	f := New([]Filter{NewMinScore(40), required, NewMinTier(scoring.TierExcellent)}, zap.New(core))

	out, err := f.RunFilters(context.Background(), batch())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names(out))

	steps := logs.FilterMessage("filter step").All()
	require.Len(t, steps, 2)
	assert.Equal(t, "min_score", steps[0].ContextMap()["name"])

	statuses := f.Describe()
	require.Len(t, statuses, 3)
	assert.False(t, statuses[1].Enabled)
	assert.Equal(t, "no skills configured", statuses[1].Reason)
	assert.Equal(t, "excellent", statuses[2].Details["min_tier"])
}

func TestRunFiltersValidationError(t *testing.T) {
	_, err := New([]Filter{NewMinScore(-1)}, nil).RunFilters(context.Background(), batch())
	assert.ErrorContains(t, err, "min_score")
}

func TestFiltersKeepOrderAndInput(t *testing.T) {
	in := batch()
	out, _, err := NewMinScore(0).Apply(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, names(in), names(out))
	assert.Equal(t, 3, in.Len())
}
