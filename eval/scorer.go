package eval

import "strings"

// ScoreKeywords counts expected keywords found in a response, case
// insensitively, and returns the matched keywords and the fraction matched.
func ScoreKeywords(response string, expected []string) (matched []string, score float64) {
	if len(expected) == 0 {
		return nil, 0
	}
	lower := strings.ToLower(response)
	for _, kw := range expected {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched, float64(len(matched)) / float64(len(expected))
}
