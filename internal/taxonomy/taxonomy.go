// Package taxonomy holds the reference vocabularies used to match résumés against
// job descriptions, and the weighted rules used to vote on a candidate's role.
package taxonomy

import "slices"

// Category is a role family that collects votes from trigger skills.
type Category string

const (
	Backend  Category = "backend"
	Frontend Category = "frontend"
	Data     Category = "data"
	DevOps   Category = "devops"
)

// Categories lists every role family in a fixed order.
var Categories = []Category{Backend, Frontend, Data, DevOps}

// Trigger is a skill that adds Weight votes to a category when the candidate has it.
type Trigger struct {
	Skill  string
	Weight int
}

// RoleRule binds a category to the skills that vote for it.
type RoleRule struct {
	Category Category
	Triggers []Trigger
}

// Taxonomy is read-only after construction and is shared by every component of a run.
// All terms are lowercase. EducationKeywords is ordered by priority: the first hit wins.
type Taxonomy struct {
	TechnicalSkills   []string
	SoftSkills        []string
	EducationKeywords []string
	RoleRules         []RoleRule
}

// Default returns the built-in taxonomy. Callers must not modify it.
func Default() *Taxonomy {
	return builtin
}

// Clone returns a deep copy that can be modified freely.
func (t *Taxonomy) Clone() *Taxonomy {
	rules := make([]RoleRule, 0, len(t.RoleRules))
	for _, rule := range t.RoleRules {
		rules = append(rules, RoleRule{Category: rule.Category, Triggers: slices.Clone(rule.Triggers)})
	}

	return &Taxonomy{
		TechnicalSkills:   slices.Clone(t.TechnicalSkills),
		SoftSkills:        slices.Clone(t.SoftSkills),
		EducationKeywords: slices.Clone(t.EducationKeywords),
		RoleRules:         rules,
	}
}

// Rule returns the rule for a category, or nil if the taxonomy has none.
func (t *Taxonomy) Rule(category Category) *RoleRule {
	for i := range t.RoleRules {
		if t.RoleRules[i].Category == category {
			return &t.RoleRules[i]
		}
	}
	return nil
}

// Short terms such as "go" or "rust" are left out on purpose: substring matching
// would hit "good" or "trust".
var builtin = &Taxonomy{
	TechnicalSkills: []string{
		"java", "python", "c++", "c#", "javascript", "typescript", "golang", "kotlin", "scala", "php", "ruby",
		"react", "angular", "vue", "next.js", "node.js", "html", "css",
		"spring", "hibernate", "django", "flask", "fastapi", "graphql", "microservices", "kafka",
		"sql", "mysql", "postgresql", "mongodb", "redis",
		"docker", "kubernetes", "terraform", "ansible", "jenkins", "ci/cd",
		"aws", "azure", "gcp", "linux", "git", "maven", "gradle",
		"machine learning", "deep learning", "tensorflow", "pytorch", "pandas", "numpy", "scikit-learn",
		"spark", "hadoop", "tableau", "statistics",
		"agile", "scrum",
	},
	SoftSkills: []string{
		"communication", "leadership", "teamwork", "collaboration", "problem solving",
		"critical thinking", "adaptability", "time management", "creativity", "mentoring",
	},
	EducationKeywords: []string{
		"phd", "doctorate", "master", "mba", "bachelor", "b.tech", "b.sc", "associate", "diploma", "certification",
	},
	RoleRules: []RoleRule{
		{Category: Backend, Triggers: []Trigger{
			{"java", 2}, {"python", 1}, {"golang", 2}, {"c#", 2}, {"c++", 1}, {"kotlin", 1}, {"scala", 1},
			{"php", 2}, {"ruby", 2}, {"node.js", 2}, {"spring", 2}, {"hibernate", 1}, {"django", 2},
			{"flask", 2}, {"fastapi", 2}, {"graphql", 1}, {"microservices", 2}, {"kafka", 1},
			{"sql", 1}, {"mysql", 1}, {"postgresql", 1}, {"mongodb", 1}, {"redis", 1},
		}},
		{Category: Frontend, Triggers: []Trigger{
			{"javascript", 2}, {"typescript", 2}, {"react", 3}, {"angular", 3}, {"vue", 3},
			{"next.js", 2}, {"html", 1}, {"css", 1},
		}},
		{Category: Data, Triggers: []Trigger{
			{"python", 2}, {"machine learning", 3}, {"deep learning", 3}, {"tensorflow", 3}, {"pytorch", 3},
			{"scikit-learn", 3}, {"pandas", 2}, {"numpy", 2}, {"spark", 2}, {"hadoop", 2},
			{"tableau", 2}, {"statistics", 2}, {"sql", 1},
		}},
		{Category: DevOps, Triggers: []Trigger{
			{"docker", 2}, {"kubernetes", 3}, {"terraform", 3}, {"ansible", 2}, {"jenkins", 2},
			{"ci/cd", 2}, {"aws", 2}, {"azure", 2}, {"gcp", 2}, {"linux", 1},
		}},
	},
}
