// Package huggingface implements similarity.Provider on top of the Hugging Face
// inference API sentence-similarity task.
package huggingface

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spigell/hire-screener/internal/similarity"
)

const (
	providerName = "huggingface"
	defaultModel = "sentence-transformers/all-MiniLM-L6-v2"
	apiURL       = "https://api-inference.huggingface.co/models"
	userAgent    = "spigell/hire-screener"

	defaultMaxLogLength = 200
)

type Client struct {
	token   string
	model   string
	logger  *zap.Logger
	limiter *rate.Limiter

	HTTPClient   *http.Client
	UserAgent    string
	APIURL       string
	MaxLogLength int
}

var _ similarity.Provider = (*Client)(nil)

// New creates a client. An empty model selects all-MiniLM-L6-v2. requestsPerSecond
// limits outgoing calls; zero or less disables the limiter.
func New(logger *zap.Logger, token, model string, requestsPerSecond float64) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	return &Client{
		token:        token,
		model:        model,
		logger:       logger,
		limiter:      limiter,
		HTTPClient:   &http.Client{},
		UserAgent:    userAgent,
		APIURL:       apiURL,
		MaxLogLength: defaultMaxLogLength,
	}
}

func (c *Client) Name() string { return providerName }

func (c *Client) Model() string { return c.model }

// Similarity posts the texts to the model endpoint in a single attempt.
func (c *Client) Similarity(ctx context.Context, req similarity.Request) (similarity.Response, error) {
	if err := req.Validate(); err != nil {
		return similarity.Response{}, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return similarity.Response{}, err
		}
	}

	scores, err := c.postSentenceSimilarity(ctx, req.SourceText, req.CandidateTexts)
	if err != nil {
		return similarity.Response{}, err
	}

	return similarity.Response{Scores: scores}, nil
}

func (c *Client) endpoint() string {
	return strings.TrimRight(c.APIURL, "/") + "/" + c.model
}
