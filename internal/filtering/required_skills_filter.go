package filtering

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/spigell/hire-screener/internal/screening"
)

type requiredSkillsFilter struct {
	toggle
	skills []string
}

// NewRequiredSkills drops candidates whose résumé lacks any of the given technical skills.
func NewRequiredSkills(skills []string) Filter {
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill = strings.ToLower(strings.TrimSpace(skill)); skill != "" {
			normalized = append(normalized, skill)
		}
	}
	return &requiredSkillsFilter{skills: normalized}
}

func (f *requiredSkillsFilter) Name() string { return "required_skills" }

func (f *requiredSkillsFilter) Validate() error {
	if len(f.skills) == 0 && f.IsEnabled() {
		return errors.New("at least one skill is required")
	}
	return nil
}

func (f *requiredSkillsFilter) Apply(_ context.Context, r *screening.Results) (*screening.Results, Step, error) {
	out, step := keep(r, func(c screening.Candidate) bool {
		for _, skill := range f.skills {
			if !slices.Contains(c.AllSkills, skill) {
				return false
			}
		}
		return true
	})
	return out, step, nil
}

func (f *requiredSkillsFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"skills": strings.Join(f.skills, ",")},
	}
}
