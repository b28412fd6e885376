package strategy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Similarity scores how closely a candidate label matches a query, in
// [0.0, 1.0]. Comparison is case-insensitive. A containment match scores
// 1.0 so that partial labels ("Submit" inside "Submit order") pass even
// strict thresholds; otherwise the score is the normalized Levenshtein
// ratio.
func Similarity(query, candidate string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(strings.TrimSpace(candidate))
	if q == "" || c == "" {
		if q == c {
			return 1.0
		}
		return 0.0
	}
	if q == c || strings.Contains(c, q) || strings.Contains(q, c) {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(q, c)
	longer := len([]rune(q))
	if l := len([]rune(c)); l > longer {
		longer = l
	}
	return 1.0 - float64(dist)/float64(longer)
}

// Matches reports whether candidate matches query at or above threshold.
func Matches(query, candidate string, threshold float64) bool {
	return Similarity(query, candidate) >= threshold
}
