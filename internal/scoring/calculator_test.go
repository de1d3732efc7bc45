package scoring

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/hire-screener/internal/similarity"
	"github.com/spigell/hire-screener/internal/similarity/huggingface"
	"github.com/spigell/hire-screener/internal/taxonomy"
)

type stubProvider struct {
	scores []float64
	err    error
	calls  int
	last   similarity.Request
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-model" }

func (s *stubProvider) Similarity(_ context.Context, req similarity.Request) (similarity.Response, error) {
	s.calls++
	s.last = req
	if s.err != nil {
		return similarity.Response{}, s.err
	}
	return similarity.Response{Scores: s.scores}, nil
}

const (
	backendJD     = "Java Spring AWS Microservices SQL Docker"
	backendResume = "8 years in Java, Spring Boot, Microservices, and AWS"
)

func TestLocalKeywordScore(t *testing.T) {
	t.Parallel()

	tx := taxonomy.Default()

	tests := []struct {
		name   string
		resume string
		jd     string
		want   float64
	}{
		{name: "no tech terms in jd", resume: "java python", jd: "we value kindness", want: NeutralScore},
		{name: "empty jd", resume: "java", jd: "", want: NeutralScore},
		{name: "empty resume", resume: "  ", jd: "java", want: NeutralScore},
		{name: "full overlap", resume: "docker and kubernetes", jd: "Docker, Kubernetes", want: 100},
		{name: "no overlap", resume: "photoshop", jd: "Docker, Kubernetes", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, LocalKeywordScore(tx, tt.resume, tt.jd), 1e-9)
		})
	}
}

func TestLocalKeywordScoreAgreesWithSkillLists(t *testing.T) {
	tx := taxonomy.Default()

	required := taxonomy.ContainsAny(tx.TechnicalSkills, backendJD)
	matched := taxonomy.ContainsAny(required, backendResume)
	require.NotEmpty(t, required)

	want := 100 * float64(len(matched)) / float64(len(required))
	assert.InDelta(t, want, LocalKeywordScore(tx, backendResume, backendJD), 1e-9)
}

func TestLocalKeywordScoreMonotonic(t *testing.T) {
	tx := taxonomy.Default()
	resume := "java developer"
	before := LocalKeywordScore(tx, resume, backendJD)

	for _, skill := range taxonomy.ContainsAny(tx.TechnicalSkills, backendJD) {
		resume += " " + skill
		after := LocalKeywordScore(tx, resume, backendJD)
		assert.GreaterOrEqual(t, after, before, "adding %q lowered the score", skill)
		before = after
	}
	assert.InDelta(t, 100, before, 1e-9)
}

func TestCalculateWithoutProvider(t *testing.T) {
	calc := NewCalculator(nil, nil, nil)
	assert.False(t, calc.HasProvider())

	out := calc.Calculate(context.Background(), backendResume, backendJD)
	assert.Equal(t, MethodKeyword, out.Method)
	assert.Empty(t, out.FallbackReason)
	assert.InDelta(t, LocalKeywordScore(taxonomy.Default(), backendResume, backendJD), out.Score, 1e-9)
}

func TestCalculateUsesProvider(t *testing.T) {
	provider := &stubProvider{scores: []float64{0.83}}
	calc := NewCalculator(taxonomy.Default(), provider, zap.NewNop())

	out := calc.Calculate(context.Background(), backendResume, backendJD)
	assert.Equal(t, MethodProvider, out.Method)
	assert.InDelta(t, 83, out.Score, 1e-9)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, backendResume, provider.last.SourceText)
	assert.Equal(t, []string{backendJD}, provider.last.CandidateTexts)
}

func TestCalculateTruncatesProviderInput(t *testing.T) {
	provider := &stubProvider{scores: []float64{0.5}}
	calc := NewCalculator(nil, provider, nil)

	long := strings.Repeat("é", MaxProviderTextLength+50)
	calc.Calculate(context.Background(), long, long)

	assert.Equal(t, MaxProviderTextLength, len([]rune(provider.last.SourceText)))
	assert.Equal(t, MaxProviderTextLength, len([]rune(provider.last.CandidateTexts[0])))
}

func TestCalculateEmptyJDPathPrecedence(t *testing.T) {
	withoutProvider := NewCalculator(nil, nil, nil).Calculate(context.Background(), backendResume, "")
	assert.Equal(t, MethodKeyword, withoutProvider.Method)
	assert.InDelta(t, NeutralScore, withoutProvider.Score, 1e-9)

	provider := &stubProvider{scores: []float64{0.12}}
	withProvider := NewCalculator(nil, provider, nil).Calculate(context.Background(), backendResume, "")
	assert.Equal(t, MethodProvider, withProvider.Method)
	assert.InDelta(t, 12, withProvider.Score, 1e-9)

	failing := &stubProvider{err: context.DeadlineExceeded}
	fallback := NewCalculator(nil, failing, nil).Calculate(context.Background(), backendResume, "")
	assert.Equal(t, MethodKeyword, fallback.Method)
	assert.InDelta(t, NeutralScore, fallback.Score, 1e-9)
}

func TestCalculateFallsBackOnMalformedScores(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
	}{
		{name: "empty", scores: nil},
		{name: "nan", scores: []float64{math.NaN()}},
		{name: "inf", scores: []float64{math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCalculator(nil, &stubProvider{scores: tt.scores}, nil)
			out := calc.Calculate(context.Background(), backendResume, backendJD)
			assert.Equal(t, MethodKeyword, out.Method)
			assert.Contains(t, out.FallbackReason, "malformed")
		})
	}
}

func TestCalculateClampsProviderScore(t *testing.T) {
	high := NewCalculator(nil, &stubProvider{scores: []float64{1.4}}, nil).Calculate(context.Background(), "a", "b")
	assert.InDelta(t, 100, high.Score, 1e-9)

	low := NewCalculator(nil, &stubProvider{scores: []float64{-0.2}}, nil).Calculate(context.Background(), "a", "b")
	assert.InDelta(t, 0, low.Score, 1e-9)
}

func TestCalculateHTTP500FallsBackAndLogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model overloaded"}`))
	}))
	defer server.Close()

	client := huggingface.New(zap.NewNop(), "hf_token", "", 0)
	client.APIURL = server.URL

	core, logs := observer.New(zapcore.WarnLevel)
	calc := NewCalculator(taxonomy.Default(), client, zap.New(core))

	out := calc.Calculate(context.Background(), backendResume, backendJD)

	assert.Equal(t, MethodKeyword, out.Method)
	assert.InDelta(t, LocalKeywordScore(taxonomy.Default(), backendResume, backendJD), out.Score, 1e-9)
	assert.NotEmpty(t, out.FallbackReason)

	entries := logs.FilterMessage("similarity provider failed, using keyword score").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "huggingface", ctx["similarity_provider"])
	assert.EqualValues(t, http.StatusInternalServerError, ctx["status_code"])
	assert.Contains(t, ctx["body_preview"], "model overloaded")
}
