// Package openai implements similarity.Provider with OpenAI embeddings and cosine similarity.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/spigell/hire-screener/internal/similarity"
)

const providerName = "openai"

var defaultModel = openaisdk.EmbeddingModelTextEmbedding3Small

type embeddingsAPI interface {
	New(ctx context.Context, body openaisdk.EmbeddingNewParams, opts ...option.RequestOption) (*openaisdk.CreateEmbeddingResponse, error)
}

// Embedder scores texts with a single batched embeddings request.
type Embedder struct {
	api   embeddingsAPI
	model openaisdk.EmbeddingModel
}

var _ similarity.Provider = (*Embedder)(nil)

// NewEmbedder creates an Embedder. An empty model selects text-embedding-3-small.
func NewEmbedder(apiKey, model string) (*Embedder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	client := openaisdk.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)

	embeddingModel := defaultModel
	if model = strings.TrimSpace(model); model != "" {
		embeddingModel = openaisdk.EmbeddingModel(model)
	}

	return &Embedder{api: &client.Embeddings, model: embeddingModel}, nil
}

func (e *Embedder) Name() string { return providerName }

func (e *Embedder) Model() string { return string(e.model) }

// Similarity embeds the source text followed by every candidate text and returns cosine scores.
func (e *Embedder) Similarity(ctx context.Context, req similarity.Request) (similarity.Response, error) {
	if err := req.Validate(); err != nil {
		return similarity.Response{}, err
	}

	texts := append([]string{req.SourceText}, req.CandidateTexts...)

	resp, err := e.api.New(ctx, openaisdk.EmbeddingNewParams{
		Input: openaisdk.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Model: e.model,
	})
	if err != nil {
		return similarity.Response{}, fmt.Errorf("create embeddings: %w", err)
	}

	vectors := make([][]float64, len(resp.Data))
	for _, data := range resp.Data {
		if data.Index < 0 || int(data.Index) >= len(vectors) {
			return similarity.Response{}, fmt.Errorf("%w: embedding index %d out of range", similarity.ErrMalformedResponse, data.Index)
		}
		vectors[data.Index] = data.Embedding
	}

	return similarity.ScoreEmbeddings(vectors, len(req.CandidateTexts))
}
