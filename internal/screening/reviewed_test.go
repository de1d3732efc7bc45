package screening

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewed.json")

	empty, err := ReviewedFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)

	empty.Append(sampleResults().ToReviewed())
	require.NoError(t, empty.ToFile(path))

	loaded, err := ReviewedFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "Alice", loaded.Items[0].Name)
	assert.False(t, loaded.Items[0].ReviewedAt.IsZero())
}

func TestReviewedFromEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewed.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	reviewed, err := ReviewedFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, reviewed.Items)
}

func TestReviewedContains(t *testing.T) {
	reviewed := &Reviewed{Items: []*ReviewedCandidate{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: NotFound},
	}}

	assert.True(t, reviewed.Contains(Candidate{Name: "Someone Else", Email: "ALICE@example.com"}))
	assert.False(t, reviewed.Contains(Candidate{Name: "Alice", Email: "other@example.com"}))
	assert.True(t, reviewed.Contains(Candidate{Name: "bob", Email: "bob@example.com"}))
	assert.False(t, reviewed.Contains(Candidate{Name: "Carol", Email: NotFound}))
}
