package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/hire-screener/internal/screening"
)

func TestExtract(t *testing.T) {
	text := "Jane Doe\njane.doe@example.com | +1 5551234567\nSenior engineer with 8+ years of Java."

	profile := Extract("jane_doe", text)

	assert.Equal(t, "jane_doe", profile.Name)
	assert.Equal(t, "jane.doe@example.com", profile.Email)
	assert.Equal(t, "+1 5551234567", profile.Phone)
	assert.Equal(t, 8, profile.ExperienceYears)
	assert.Equal(t, text, profile.RawText)
}

func TestExtractMissingFields(t *testing.T) {
	profile := Extract("anon", "Enthusiastic learner")

	assert.Equal(t, screening.NotFound, profile.Email)
	assert.Equal(t, screening.NotFound, profile.Phone)
	assert.Zero(t, profile.ExperienceYears)
}

func TestEstimateExperience(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "3 years in backend, 10 years total", want: 3},
		{text: "1 Year of Go", want: 1},
		{text: "12+ YEARS", want: 12},
		{text: "many years", want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateExperience(tt.text), tt.text)
	}
}

func TestCandidateName(t *testing.T) {
	assert.Equal(t, "John Smith", CandidateName("/tmp/resumes/John Smith.pdf"))
	assert.Equal(t, "notes", CandidateName("notes.txt"))
}

func TestFileLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice.txt")
	require.NoError(t, os.WriteFile(path, []byte("alice@example.com, 5 years of Python"), 0o600))

	profile, err := File{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Name)
	assert.Equal(t, 5, profile.ExperienceYears)
}

func TestFileLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := File{Path: filepath.Join(dir, "missing.txt")}.Load(context.Background())
	assert.Error(t, err)

	doc := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(doc, []byte("x"), 0o600))
	_, err = File{Path: doc}.Load(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = File{Path: doc}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSources(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.pdf", "skip.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	sources, err := Sources([]string{dir, filepath.Join(dir, "*.txt"), "nope.txt"})
	require.NoError(t, err)

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.txt"),
		"nope.txt",
	}, names)
}
