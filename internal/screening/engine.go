package screening

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/hire-screener/internal/analysis"
	"github.com/spigell/hire-screener/internal/logger"
	"github.com/spigell/hire-screener/internal/report"
	"github.com/spigell/hire-screener/internal/scoring"
	"github.com/spigell/hire-screener/internal/taxonomy"
)

// Engine analyzes candidates against a job description. It holds no per-candidate state.
type Engine struct {
	taxonomy   *taxonomy.Taxonomy
	calculator *scoring.Calculator
	logger     *zap.Logger
}

// NewEngine wires the taxonomy and score calculator. A nil calculator scores locally.
func NewEngine(tx *taxonomy.Taxonomy, calculator *scoring.Calculator, log *zap.Logger) *Engine {
	if tx == nil {
		tx = taxonomy.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if calculator == nil {
		calculator = scoring.NewCalculator(tx, nil, log)
	}

	return &Engine{taxonomy: tx, calculator: calculator, logger: log}
}

// Analyze runs score, skill analysis, role classification and report for one candidate
// and returns the candidate with the result merged.
func (e *Engine) Analyze(ctx context.Context, jd JobDescription, c Candidate) Candidate {
	return c.WithResult(e.Evaluate(ctx, jd, c))
}

// Evaluate produces the analysis result for c without modifying it.
func (e *Engine) Evaluate(ctx context.Context, jd JobDescription, c Candidate) Result {
	outcome := e.calculator.Calculate(ctx, c.RawText, jd.RawText)
	skills := analysis.PerformSkillAnalysis(e.taxonomy, c.RawText, jd.RawText)
	role := analysis.DetermineRole(e.taxonomy, skills.AllCandidateSkills)

	details := report.Build(report.Input{
		CandidateName:   c.Name,
		MatchedTech:     skills.MatchedTech,
		MissingTech:     skills.MissingTech,
		MatchedSoft:     skills.MatchedSoft,
		EducationMarker: skills.EducationMarker,
		Role:            role,
		Score:           outcome.Score,
		ExperienceYears: c.ExperienceYears,
	})

	e.logger.Debug("candidate analyzed",
		append(logger.CandidateFields(c.Name, c.Source),
			zap.Float64("score", outcome.Score),
			zap.String("method", string(outcome.Method)),
			zap.String("role", role),
		)...,
	)

	return Result{
		Score:             outcome.Score,
		Method:            outcome.Method,
		FallbackReason:    outcome.FallbackReason,
		MatchedSkills:     skills.MatchedTech,
		MissingSkills:     skills.MissingTech,
		MatchedSoftSkills: skills.MatchedSoft,
		AllSkills:         skills.AllCandidateSkills,
		RecommendedRole:   role,
		EducationSummary:  skills.EducationMarker,
		AnalysisDetails:   details,
	}
}
