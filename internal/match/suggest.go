package match

import "sort"

// DefaultThreshold is the minimum normalized similarity for a suggestion.
const DefaultThreshold = 0.7

// Suggestion is a candidate name with its similarity score.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those at or above
// threshold, best first. Ties are broken by name. Exact matches are skipped.
func Rank(name string, candidates []string, threshold float64) []Suggestion {
	var out []Suggestion

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := NormalizedLevenshteinScore(name, c)
		if score >= threshold {
			out = append(out, Suggestion{Name: c, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Closest returns the best candidate for name, if any reaches threshold.
func Closest(name string, candidates []string, threshold float64) (string, bool) {
	ranked := Rank(name, candidates, threshold)
	if len(ranked) == 0 {
		return "", false
	}

	return ranked[0].Name, true
}
