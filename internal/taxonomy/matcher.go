package taxonomy

import "strings"

// ContainsAny returns the vocabulary terms found in text, in vocabulary order.
//
// Matching is case-insensitive substring containment, so "java" also matches
// inside "javascript". Callers that need word boundaries must not rely on this.
func ContainsAny(vocabulary []string, text string) []string {
	found := make([]string, 0)
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, term := range vocabulary {
		if term == "" {
			continue
		}
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}

	return found
}

// FirstMatch returns the first vocabulary term found in text and whether any matched.
func FirstMatch(vocabulary []string, text string) (string, bool) {
	if text == "" {
		return "", false
	}

	lower := strings.ToLower(text)
	for _, term := range vocabulary {
		if term != "" && strings.Contains(lower, term) {
			return term, true
		}
	}

	return "", false
}
