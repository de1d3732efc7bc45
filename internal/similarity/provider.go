// Package similarity defines the contract for external semantic-similarity providers.
package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrMalformedResponse is returned when a provider answers with an unusable payload.
var ErrMalformedResponse = errors.New("malformed similarity response")

// Request asks for the similarity of every CandidateTexts entry to SourceText.
type Request struct {
	SourceText     string
	CandidateTexts []string
}

// Response holds one score per candidate text, aligned by index. Scores are expected in [0,1].
type Response struct {
	Scores []float64
}

// Provider computes semantic similarity. Implementations make a single attempt and never retry.
type Provider interface {
	Name() string
	Model() string
	Similarity(ctx context.Context, req Request) (Response, error)
}

// StatusError reports a non-success HTTP answer from a provider.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status: %s", e.Status)
}

// First validates resp against req and returns the score of the first candidate text.
func (resp Response) First() (float64, error) {
	if len(resp.Scores) == 0 {
		return 0, fmt.Errorf("%w: no scores", ErrMalformedResponse)
	}

	score := resp.Scores[0]
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("%w: score is not a finite number", ErrMalformedResponse)
	}

	return score, nil
}

// Cosine returns the cosine similarity of two equally sized vectors.
func Cosine(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("%w: vector sizes %d and %d", ErrMalformedResponse, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("%w: zero vector", ErrMalformedResponse)
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// ScoreEmbeddings turns a source embedding followed by candidate embeddings into a Response.
func ScoreEmbeddings(vectors [][]float64, candidates int) (Response, error) {
	if len(vectors) != candidates+1 {
		return Response{}, fmt.Errorf("%w: expected %d embeddings, got %d", ErrMalformedResponse, candidates+1, len(vectors))
	}

	scores := make([]float64, 0, candidates)
	for _, vector := range vectors[1:] {
		score, err := Cosine(vectors[0], vector)
		if err != nil {
			return Response{}, err
		}
		scores = append(scores, score)
	}

	return Response{Scores: scores}, nil
}

// Validate checks that req carries at least one candidate text.
func (req Request) Validate() error {
	if len(req.CandidateTexts) == 0 {
		return errors.New("at least one candidate text is required")
	}
	return nil
}
