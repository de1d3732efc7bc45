package huggingface

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/spigell/hire-screener/internal/similarity"
	"github.com/spigell/hire-screener/internal/utils"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip"
)

type sentenceSimilarityPayload struct {
	Inputs sentenceSimilarityInputs `json:"inputs"`
}

type sentenceSimilarityInputs struct {
	SourceSentence string   `json:"source_sentence"`
	Sentences      []string `json:"sentences"`
}

func (c *Client) postSentenceSimilarity(ctx context.Context, source string, sentences []string) ([]float64, error) {
	body, err := json.Marshal(sentenceSimilarityPayload{
		Inputs: sentenceSimilarityInputs{SourceSentence: source, Sentences: sentences},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.request(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &similarity.StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
			Body:   utils.TruncateForLog(string(data), c.MaxLogLength),
		}
	}

	var scores []float64
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("%w: %v", similarity.ErrMalformedResponse, err)
	}

	if len(scores) != len(sentences) {
		return nil, fmt.Errorf("%w: expected %d scores, got %d", similarity.ErrMalformedResponse, len(sentences), len(scores))
	}

	return scores, nil
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Encoding", contentEncoding)

	return req
}

func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	return io.ReadAll(reader)
}
