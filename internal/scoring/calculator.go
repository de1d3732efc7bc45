// Package scoring computes the 0-100 fit score of a résumé against a job description.
package scoring

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hire-screener/internal/logger"
	"github.com/spigell/hire-screener/internal/similarity"
	"github.com/spigell/hire-screener/internal/taxonomy"
	"github.com/spigell/hire-screener/internal/utils"
)

// MaxProviderTextLength caps each text sent to a similarity provider, in characters.
const MaxProviderTextLength = 1000

// NeutralScore is returned when the job description names no recognized technical skill.
const NeutralScore = 50.0

// Method tells which path produced a score.
type Method string

const (
	MethodProvider Method = "provider"
	MethodKeyword  Method = "keyword"
)

// Outcome is the result of one score calculation.
// FallbackReason is set only when a configured provider failed.
type Outcome struct {
	Score          float64 `json:"score"`
	Method         Method  `json:"method"`
	FallbackReason string  `json:"fallback_reason,omitempty"`
}

// Calculator selects between the similarity provider and the local keyword score.
type Calculator struct {
	provider similarity.Provider
	taxonomy *taxonomy.Taxonomy
	logger   *zap.Logger
}

// NewCalculator creates a Calculator. A nil provider means no credential is configured
// and every call uses the local keyword score.
func NewCalculator(tx *taxonomy.Taxonomy, provider similarity.Provider, log *zap.Logger) *Calculator {
	if tx == nil {
		tx = taxonomy.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if provider != nil {
		log = logger.WithCommonFields(log, provider.Name(), provider.Model())
	}

	return &Calculator{provider: provider, taxonomy: tx, logger: log}
}

// HasProvider reports whether a similarity provider is configured.
func (c *Calculator) HasProvider() bool {
	return c.provider != nil
}

// Calculate returns the score for resumeText against jdText. Provider failures are
// logged and answered with the local keyword score; they never surface as errors.
func (c *Calculator) Calculate(ctx context.Context, resumeText, jdText string) Outcome {
	if c.provider == nil {
		return Outcome{Score: LocalKeywordScore(c.taxonomy, resumeText, jdText), Method: MethodKeyword}
	}

	score, err := c.providerScore(ctx, resumeText, jdText)
	if err == nil {
		return Outcome{Score: score, Method: MethodProvider}
	}

	fields := []zap.Field{zap.Error(err)}
	var statusErr *similarity.StatusError
	if errors.As(err, &statusErr) {
		fields = append(fields,
			zap.Int("status_code", statusErr.Code),
			zap.String("body_preview", utils.TruncateForLog(statusErr.Body, 200)),
		)
	}
	c.logger.Warn("similarity provider failed, using keyword score", fields...)

	return Outcome{
		Score:          LocalKeywordScore(c.taxonomy, resumeText, jdText),
		Method:         MethodKeyword,
		FallbackReason: err.Error(),
	}
}

func (c *Calculator) providerScore(ctx context.Context, resumeText, jdText string) (float64, error) {
	resp, err := c.provider.Similarity(ctx, similarity.Request{
		SourceText:     utils.TruncateRunes(resumeText, MaxProviderTextLength),
		CandidateTexts: []string{utils.TruncateRunes(jdText, MaxProviderTextLength)},
	})
	if err != nil {
		return 0, err
	}

	value, err := resp.First()
	if err != nil {
		return 0, err
	}

	return clamp(value * 100), nil
}

// LocalKeywordScore is the percentage of technical skills named by the job description
// that the résumé also names. It is NeutralScore when the job description names none
// or the résumé is blank.
func LocalKeywordScore(tx *taxonomy.Taxonomy, resumeText, jdText string) float64 {
	if strings.TrimSpace(resumeText) == "" {
		return NeutralScore
	}

	required := taxonomy.ContainsAny(tx.TechnicalSkills, jdText)
	if len(required) == 0 {
		return NeutralScore
	}

	present := taxonomy.ContainsAny(required, resumeText)

	return 100 * float64(len(present)) / float64(len(required))
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}
