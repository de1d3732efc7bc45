// Package report renders the human-readable analysis narrative for one candidate.
package report

import (
	"fmt"
	"strings"

	"github.com/spigell/hire-screener/internal/scoring"
)

// Section titles, in output order.
const (
	SectionStrengths      = "Technical Strengths"
	SectionGaps           = "Skill Gaps"
	SectionSoftSkills     = "Soft Skills & Qualities"
	SectionExperience     = "Experience & Education"
	SectionRecommendation = "Summary Recommendation"
)

const (
	noStrengths  = "No direct technical matches with the job requirements were found."
	noGaps       = "Perfect match! No critical skill gaps identified."
	noSoftSkills = "No specific soft skills detected. Professional qualities are implied."
)

// Input carries everything a report references. Lists are expected in taxonomy order.
type Input struct {
	CandidateName   string
	MatchedTech     []string
	MissingTech     []string
	MatchedSoft     []string
	EducationMarker string
	Role            string
	Score           float64
	ExperienceYears int
}

// Build assembles the five report sections in fixed order.
func Build(in Input) string {
	var b strings.Builder

	if name := strings.TrimSpace(in.CandidateName); name != "" {
		fmt.Fprintf(&b, "Candidate: %s\n", name)
		fmt.Fprintf(&b, "Score: %.1f%%\n\n", in.Score)
	}

	sections := []struct{ title, body string }{
		{SectionStrengths, strengths(in.MatchedTech)},
		{SectionGaps, gaps(in.MissingTech)},
		{SectionSoftSkills, softSkills(in.MatchedSoft)},
		{SectionExperience, experience(in.ExperienceYears, in.EducationMarker)},
		{SectionRecommendation, Recommendation(in.Score, in.Role)},
	}
	for i, section := range sections {
		fmt.Fprintf(&b, "%d. %s\n%s\n\n", i+1, section.title, section.body)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Recommendation returns the closing verdict for a score and role.
func Recommendation(score float64, role string) string {
	tier := scoring.TierOf(score)

	switch tier {
	case scoring.TierExcellent:
		return fmt.Sprintf("%s: strongly recommended for an interview as %s.", tier, role)
	case scoring.TierPotential:
		return fmt.Sprintf("%s: consider for a Junior %s position or further screening.", tier, role)
	default:
		return fmt.Sprintf("%s: the profile does not meet the core requirements of this role.", tier)
	}
}

func strengths(matched []string) string {
	if len(matched) == 0 {
		return noStrengths
	}
	return fmt.Sprintf("Matches %d required skill(s): %s.", len(matched), strings.Join(matched, ", "))
}

func gaps(missing []string) string {
	if len(missing) == 0 {
		return noGaps
	}
	return fmt.Sprintf("Missing %d required skill(s): %s.", len(missing), strings.Join(missing, ", "))
}

func softSkills(matched []string) string {
	if len(matched) == 0 {
		return noSoftSkills
	}
	return fmt.Sprintf("Demonstrates %s.", strings.Join(matched, ", "))
}

func experience(years int, education string) string {
	if strings.TrimSpace(education) == "" {
		education = "Not specified"
	}

	exp := "No explicit experience duration found."
	if years > 0 {
		unit := "years"
		if years == 1 {
			unit = "year"
		}
		exp = fmt.Sprintf("%d %s of experience.", years, unit)
	}

	return fmt.Sprintf("%s Education: %s.", exp, education)
}
