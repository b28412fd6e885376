package browser

import (
	"sort"

	"github.com/axscope/axscope/internal/strategy"
)

// Match is one element matched by FindElements, with its similarity score.
type Match struct {
	Element WebElement `yaml:"element" json:"element"`
	Score   float64    `yaml:"score"   json:"score"`
}

// FindElements locates elements in an extracted tree whose title, value, or
// description matches the query at or above the parameters' fuzzy
// threshold. Results are ordered by role priority (the parameters' role
// list order), then score descending, then tree order. With SearchFrames
// unset, frame elements are skipped.
func FindElements(tree *BrowserAccessibilityTree, query string, params strategy.SearchParameters) []Match {
	rolePriority := make(map[string]int, len(params.Roles))
	for i, r := range params.Roles {
		rolePriority[r] = i
	}

	var matches []Match
	consider := func(el WebElement) {
		if len(rolePriority) > 0 {
			if _, ok := rolePriority[el.Role]; !ok {
				return
			}
		}
		best := strategy.Similarity(query, el.Title)
		if s := strategy.Similarity(query, el.Value); s > best {
			best = s
		}
		if s := strategy.Similarity(query, el.Description); s > best {
			best = s
		}
		if best >= params.FuzzyThreshold {
			matches = append(matches, Match{Element: el, Score: best})
		}
	}

	for i := range tree.Tabs {
		tab := &tree.Tabs[i]
		for _, el := range tab.Elements {
			consider(el)
		}
		if !params.SearchFrames {
			continue
		}
		for j := range tab.Frames {
			for _, el := range tab.Frames[j].Elements {
				consider(el)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		pi := rolePriority[matches[i].Element.Role]
		pj := rolePriority[matches[j].Element.Role]
		if pi != pj {
			return pi < pj
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}
