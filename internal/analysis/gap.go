// Package analysis derives skill gaps, soft skills, an education marker and a
// recommended role from résumé and job-description text.
package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/hire-screener/internal/taxonomy"
)

// NoEducationMarker is reported when no education keyword is found.
const NoEducationMarker = "Experience Based"

// SkillAnalysis is the score-independent part of a candidate evaluation.
// Every list follows taxonomy order.
type SkillAnalysis struct {
	// MatchedTech are JD technical skills also present in the résumé.
	MatchedTech []string
	// MissingTech are JD technical skills absent from the résumé.
	MissingTech []string
	// MatchedSoft are soft skills present in the résumé. The JD is not consulted.
	MatchedSoft []string
	// AllCandidateSkills are every technical skill in the résumé, regardless of the JD.
	AllCandidateSkills []string
	// EducationMarker is the first education keyword hit, e.g. "Master Level".
	EducationMarker string
}

// PerformSkillAnalysis compares the résumé against the job description using tx.
// If either text is blank the result is empty with NoEducationMarker.
func PerformSkillAnalysis(tx *taxonomy.Taxonomy, resumeText, jdText string) SkillAnalysis {
	result := SkillAnalysis{
		MatchedTech:        []string{},
		MissingTech:        []string{},
		MatchedSoft:        []string{},
		AllCandidateSkills: []string{},
		EducationMarker:    NoEducationMarker,
	}

	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jdText) == "" {
		return result
	}

	resumeSkills := taxonomy.ContainsAny(tx.TechnicalSkills, resumeText)
	inResume := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		inResume[skill] = struct{}{}
	}

	for _, skill := range taxonomy.ContainsAny(tx.TechnicalSkills, jdText) {
		if _, ok := inResume[skill]; ok {
			result.MatchedTech = append(result.MatchedTech, skill)
		} else {
			result.MissingTech = append(result.MissingTech, skill)
		}
	}

	result.AllCandidateSkills = resumeSkills
	result.MatchedSoft = taxonomy.ContainsAny(tx.SoftSkills, resumeText)
	result.EducationMarker = EducationMarker(tx, resumeText)

	return result
}

// EducationMarker returns the first education keyword found in priority order,
// title-cased and suffixed with "Level".
func EducationMarker(tx *taxonomy.Taxonomy, resumeText string) string {
	keyword, ok := taxonomy.FirstMatch(tx.EducationKeywords, resumeText)
	if !ok {
		return NoEducationMarker
	}
	return titleCase(keyword) + " Level"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}
