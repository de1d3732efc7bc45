package taxonomy

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Override is the configuration shape of a taxonomy replacement. Empty lists keep
// the built-in values; a non-empty Roles map replaces all role rules.
type Override struct {
	TechnicalSkills   []string                  `mapstructure:"technical-skills"`
	SoftSkills        []string                  `mapstructure:"soft-skills"`
	EducationKeywords []string                  `mapstructure:"education-keywords"`
	Roles             map[string]map[string]int `mapstructure:"roles"`
}

// Decode builds a taxonomy from a raw configuration value (typically viper.Get("taxonomy")).
// A nil value yields the built-in taxonomy.
func Decode(raw any) (*Taxonomy, error) {
	if raw == nil {
		return Default(), nil
	}

	var override Override
	if err := mapstructure.Decode(raw, &override); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}

	return override.Apply(Default())
}

// Apply returns a copy of base with the override applied and normalized.
func (o *Override) Apply(base *Taxonomy) (*Taxonomy, error) {
	t := base.Clone()

	if len(o.TechnicalSkills) > 0 {
		t.TechnicalSkills = o.TechnicalSkills
	}
	if len(o.SoftSkills) > 0 {
		t.SoftSkills = o.SoftSkills
	}
	if len(o.EducationKeywords) > 0 {
		t.EducationKeywords = o.EducationKeywords
	}

	if len(o.Roles) > 0 {
		rules, err := decodeRoles(o.Roles)
		if err != nil {
			return nil, err
		}
		t.RoleRules = rules
	}

	lists := []struct {
		name  string
		terms *[]string
	}{
		{"technical-skills", &t.TechnicalSkills},
		{"soft-skills", &t.SoftSkills},
		{"education-keywords", &t.EducationKeywords},
	}
	for _, list := range lists {
		normalized, err := normalize(*list.terms)
		if err != nil {
			return nil, fmt.Errorf("taxonomy %s: %w", list.name, err)
		}
		*list.terms = normalized
	}

	return t, nil
}

func decodeRoles(roles map[string]map[string]int) ([]RoleRule, error) {
	for name := range roles {
		if !slices.Contains(Categories, Category(strings.ToLower(strings.TrimSpace(name)))) {
			return nil, fmt.Errorf("taxonomy roles: unknown category %q", name)
		}
	}

	rules := make([]RoleRule, 0, len(Categories))
	for _, category := range Categories {
		var triggers []Trigger
		for name, skills := range roles {
			if Category(strings.ToLower(strings.TrimSpace(name))) != category {
				continue
			}
			for skill, weight := range skills {
				skill = strings.ToLower(strings.TrimSpace(skill))
				if skill == "" {
					continue
				}
				if weight <= 0 {
					return nil, fmt.Errorf("taxonomy roles: %s/%s weight must be positive", category, skill)
				}
				triggers = append(triggers, Trigger{Skill: skill, Weight: weight})
			}
		}
		if len(triggers) == 0 {
			continue
		}
		sort.Slice(triggers, func(i, j int) bool { return triggers[i].Skill < triggers[j].Skill })
		rules = append(rules, RoleRule{Category: category, Triggers: triggers})
	}

	return rules, nil
}

// normalize lowercases and trims terms, preserving order, and rejects duplicates.
func normalize(terms []string) ([]string, error) {
	result := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			return nil, fmt.Errorf("duplicate term %q", term)
		}
		seen[term] = struct{}{}
		result = append(result, term)
	}
	return result, nil
}
