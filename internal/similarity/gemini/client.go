// Package gemini implements similarity.Provider with Gemini embeddings and cosine similarity.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/spigell/hire-screener/internal/similarity"
)

const (
	providerName = "gemini"
	defaultModel = "gemini-embedding-001"
)

type embedder interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Embedder scores texts by embedding them in a single call and comparing the vectors.
type Embedder struct {
	models embedder
	model  string
}

var _ similarity.Provider = (*Embedder)(nil)

// NewEmbedder creates an Embedder configured for the Gemini API backend.
func NewEmbedder(ctx context.Context, apiKey, model string) (*Embedder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Embedder{models: client.Models, model: model}, nil
}

func (e *Embedder) Name() string { return providerName }

func (e *Embedder) Model() string {
	if e == nil {
		return ""
	}
	return e.model
}

// Similarity embeds the source text followed by every candidate text and returns cosine scores.
func (e *Embedder) Similarity(ctx context.Context, req similarity.Request) (similarity.Response, error) {
	if e == nil || e.models == nil {
		return similarity.Response{}, errors.New("gemini embedder is not initialized")
	}

	if err := req.Validate(); err != nil {
		return similarity.Response{}, err
	}

	texts := append([]string{req.SourceText}, req.CandidateTexts...)
	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: text}},
		})
	}

	resp, err := e.models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return similarity.Response{}, fmt.Errorf("embed content: %w", err)
	}

	vectors := make([][]float64, 0, len(resp.Embeddings))
	for _, embedding := range resp.Embeddings {
		if embedding == nil {
			return similarity.Response{}, fmt.Errorf("%w: empty embedding", similarity.ErrMalformedResponse)
		}
		vector := make([]float64, len(embedding.Values))
		for i, v := range embedding.Values {
			vector[i] = float64(v)
		}
		vectors = append(vectors, vector)
	}

	return similarity.ScoreEmbeddings(vectors, len(req.CandidateTexts))
}
