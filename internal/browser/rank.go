package browser

import "sort"

// TabRank pairs a tab with its content element count.
type TabRank struct {
	Tab   *BrowserTab `yaml:"-"     json:"-"`
	ID    string      `yaml:"id"    json:"id"`
	Title string      `yaml:"title" json:"title"`
	Count int         `yaml:"count" json:"count"`
}

// RankTabsByContent orders tabs by total element count (direct elements
// plus every frame's elements), descending. Ties keep tab order, so the
// first tab wins. This is the single canonical "content-rich tab" policy;
// callers must not re-derive their own variants.
func RankTabsByContent(tree *BrowserAccessibilityTree) []TabRank {
	ranks := make([]TabRank, 0, len(tree.Tabs))
	for i := range tree.Tabs {
		tab := &tree.Tabs[i]
		ranks = append(ranks, TabRank{Tab: tab, ID: tab.ID, Title: tab.Title, Count: tab.ElementCount()})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Count > ranks[j].Count
	})
	return ranks
}

// PrimaryTab picks the tab consumers should summarize: the active tab when
// it has content, else the most content-rich tab. An active tab with zero
// elements is browser chrome, not page content, so the richest tab is
// preferred over it.
func PrimaryTab(tree *BrowserAccessibilityTree) *BrowserTab {
	active := tree.ActiveTab()
	if active != nil && active.ElementCount() > 0 {
		return active
	}
	ranks := RankTabsByContent(tree)
	if len(ranks) == 0 {
		return nil
	}
	return ranks[0].Tab
}
