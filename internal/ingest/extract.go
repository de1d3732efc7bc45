// Package ingest turns résumé files into screening profiles.
package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/hire-screener/internal/screening"
)

var (
	emailPattern      = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}`)
	phonePattern      = regexp.MustCompile(`(\+\d{1,3}[- ]?)?\d{10}`)
	experiencePattern = regexp.MustCompile(`(\d{1,2})\+?\s+years?`)
)

// Extract builds a profile from raw résumé text. Contact fields that cannot be found are
// set to screening.NotFound; experience is the first "N years" mention, or 0.
func Extract(name, text string) screening.Profile {
	return screening.Profile{
		Name:            name,
		Email:           firstMatch(emailPattern, text),
		Phone:           firstMatch(phonePattern, text),
		RawText:         text,
		ExperienceYears: EstimateExperience(text),
	}
}

// EstimateExperience returns the number in the first "N years" / "N+ years" mention.
func EstimateExperience(text string) int {
	match := experiencePattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return 0
	}

	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return years
}

func firstMatch(pattern *regexp.Regexp, text string) string {
	if match := pattern.FindString(text); match != "" {
		return match
	}
	return screening.NotFound
}
