package screening

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() *Results {
	a := NewCandidate(Profile{Name: "Alice", RawText: "go"}, "alice.txt").WithResult(Result{Score: 75, RecommendedRole: "Backend Developer", EducationSummary: "Master Level"})
	b := NewCandidate(Profile{Name: "Bob", RawText: "react"}, "bob.txt").WithResult(Result{Score: 45, RecommendedRole: "Frontend Developer", EducationSummary: "Experience Based"})

	return &Results{
		Job:        JobDescription{Title: "Engineer", RawText: "secret jd"},
		Candidates: []Candidate{a, b},
		Failures:   []Failure{{Source: "broken.pdf", Err: errors.New("unreadable")}},
	}
}

func TestResultsToFile(t *testing.T) {
	results := sampleResults()
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, results.ToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded["candidates"], 2)
	assert.NotContains(t, string(data), "secret jd")
	assert.Contains(t, string(data), `"error": "unreadable"`)
}

func TestResultsDumpToTmpFile(t *testing.T) {
	name, err := sampleResults().DumpToTmpFile()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(name) })

	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestResultsReportByRole(t *testing.T) {
	report := sampleResults().ReportByRole()

	require.Len(t, report["Backend Developer"], 1)
	assert.Equal(t, "Alice", report["Backend Developer"][0]["name"])
	assert.Equal(t, "EXCELLENT MATCH", report["Backend Developer"][0]["tier"])
	assert.Equal(t, "POTENTIAL MATCH", report["Frontend Developer"][0]["tier"])
}

func TestResultsFindByID(t *testing.T) {
	results := sampleResults()
	id := results.Candidates[1].ID

	found := results.FindByID(id)
	require.NotNil(t, found)
	assert.Equal(t, "Bob", found.Name)
	assert.Nil(t, results.FindByID("missing"))
}
