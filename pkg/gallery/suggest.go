package gallery

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggestion is one candidate tag with its match quality, higher is better.
type Suggestion struct {
	Tag   string
	Score float64
}

// SuggestTags ranks known tags against a partially typed input. Prefix
// matches rank first; the rest order by normalized levenshtein similarity.
// At most max suggestions return, and inputs shorter than two characters
// return none.
func SuggestTags(input string, known []string, max int) []Suggestion {
	input = strings.ToLower(strings.TrimSpace(input))
	if len(input) < 2 || max <= 0 {
		return nil
	}

	suggestions := make([]Suggestion, 0, len(known))
	for _, tag := range known {
		lower := strings.ToLower(tag)
		if lower == input {
			continue
		}
		score := similarity(input, lower)
		if strings.HasPrefix(lower, input) {
			// A typed prefix is a stronger signal than edit distance.
			score = 1 + score
		}
		if score < 0.3 {
			continue
		}
		suggestions = append(suggestions, Suggestion{Tag: tag, Score: score})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}

// similarity maps edit distance into [0, 1], 1 meaning identical.
func similarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
