package analysis

import "github.com/spigell/hire-screener/internal/taxonomy"

// Role labels. RoleGeneral is used when the candidate has no recognized skills at all.
const (
	RoleData      = "Data Scientist / ML Engineer"
	RoleDevOps    = "DevOps Engineer"
	RoleFullstack = "Fullstack Developer"
	RoleBackend   = "Backend Developer"
	RoleFrontend  = "Frontend Developer"
	RoleSoftware  = "Software Engineer"
	RoleGeneral   = "General Software Engineer"
)

// Votes sums trigger weights per category for the given skill set.
func Votes(tx *taxonomy.Taxonomy, skills []string) map[taxonomy.Category]int {
	has := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		has[skill] = struct{}{}
	}

	votes := make(map[taxonomy.Category]int, len(taxonomy.Categories))
	for _, category := range taxonomy.Categories {
		votes[category] = 0
	}

	for _, rule := range tx.RoleRules {
		for _, trigger := range rule.Triggers {
			if _, ok := has[trigger.Skill]; ok {
				votes[rule.Category] += trigger.Weight
			}
		}
	}

	return votes
}

// DetermineRole picks a role label from the candidate's full skill set.
// The rules are ordered: data and devops specializations win ties against
// backend and frontend, then fullstack, then the larger of backend/frontend.
func DetermineRole(tx *taxonomy.Taxonomy, skills []string) string {
	if len(skills) == 0 {
		return RoleGeneral
	}

	votes := Votes(tx, skills)
	backend := votes[taxonomy.Backend]
	frontend := votes[taxonomy.Frontend]
	data := votes[taxonomy.Data]
	devops := votes[taxonomy.DevOps]

	switch {
	case data > 0 && data >= backend && data >= frontend && data >= devops:
		return RoleData
	case devops > 0 && devops >= backend && devops >= frontend:
		return RoleDevOps
	case backend > 0 && frontend > 0:
		return RoleFullstack
	case backend > frontend:
		return RoleBackend
	case frontend > backend:
		return RoleFrontend
	default:
		return RoleSoftware
	}
}
