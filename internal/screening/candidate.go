// Package screening runs the per-candidate analysis pipeline and ranks a batch of candidates
// against one job description.
package screening

import (
	"strings"

	"github.com/google/uuid"

	"github.com/spigell/hire-screener/internal/scoring"
)

// Defaults carried by a candidate before analysis.
const (
	DefaultRole      = "Generalist"
	DefaultEducation = "Not specified"
	// NotFound marks a contact field the ingestion step could not extract.
	NotFound = "Not Found"
)

// JobDescription is the requirement text candidates are screened against.
type JobDescription struct {
	Title   string `json:"title"`
	RawText string `json:"-"`
}

// Profile is what the ingestion collaborator extracts from one résumé.
type Profile struct {
	Name            string
	Email           string
	Phone           string
	RawText         string
	ExperienceYears int
}

// Result is everything one analysis produces. It is merged into a Candidate in one step.
type Result struct {
	Score             float64
	Method            scoring.Method
	FallbackReason    string
	MatchedSkills     []string
	MissingSkills     []string
	MatchedSoftSkills []string
	AllSkills         []string
	RecommendedRole   string
	EducationSummary  string
	AnalysisDetails   string
}

// Candidate is a screened résumé. Identity fields and RawText never change after NewCandidate.
type Candidate struct {
	ID              string `json:"id"`
	Source          string `json:"source,omitempty"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RawText         string `json:"-"`
	ExperienceYears int    `json:"experience_years"`

	CurrentScore      float64        `json:"score"`
	ScoreMethod       scoring.Method `json:"score_method,omitempty"`
	FallbackReason    string         `json:"fallback_reason,omitempty"`
	MatchedSkills     []string       `json:"matched_skills"`
	MissingSkills     []string       `json:"missing_skills"`
	MatchedSoftSkills []string       `json:"matched_soft_skills"`
	AllSkills         []string       `json:"all_skills"`
	RecommendedRole   string         `json:"recommended_role"`
	EducationSummary  string         `json:"education_summary"`
	AnalysisDetails   string         `json:"analysis_details,omitempty"`

	analyzed bool
}

// NewCandidate creates an unanalyzed candidate from an ingested profile.
func NewCandidate(profile Profile, source string) Candidate {
	experience := profile.ExperienceYears
	if experience < 0 {
		experience = 0
	}

	return Candidate{
		ID:                uuid.NewString(),
		Source:            source,
		Name:              strings.TrimSpace(profile.Name),
		Email:             profile.Email,
		Phone:             profile.Phone,
		RawText:           profile.RawText,
		ExperienceYears:   experience,
		MatchedSkills:     []string{},
		MissingSkills:     []string{},
		MatchedSoftSkills: []string{},
		AllSkills:         []string{},
		RecommendedRole:   DefaultRole,
		EducationSummary:  DefaultEducation,
	}
}

// WithResult returns a copy of c carrying every field of r.
func (c Candidate) WithResult(r Result) Candidate {
	c.CurrentScore = r.Score
	c.ScoreMethod = r.Method
	c.FallbackReason = r.FallbackReason
	c.MatchedSkills = cloneOrEmpty(r.MatchedSkills)
	c.MissingSkills = cloneOrEmpty(r.MissingSkills)
	c.MatchedSoftSkills = cloneOrEmpty(r.MatchedSoftSkills)
	c.AllSkills = cloneOrEmpty(r.AllSkills)
	c.RecommendedRole = r.RecommendedRole
	c.EducationSummary = r.EducationSummary
	c.AnalysisDetails = r.AnalysisDetails
	c.analyzed = true

	return c
}

// Analyzed reports whether a result has been merged into c.
func (c Candidate) Analyzed() bool {
	return c.analyzed
}

// Tier returns the recommendation tier of the current score.
func (c Candidate) Tier() scoring.Tier {
	return scoring.TierOf(c.CurrentScore)
}

func cloneOrEmpty(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
