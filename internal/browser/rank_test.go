package browser

import "testing"

func TestRankTabsByContent(t *testing.T) {
	tree := &BrowserAccessibilityTree{
		Tabs: []BrowserTab{
			{ID: "tab-1", Title: "Sparse", Elements: []WebElement{{Role: "AXButton"}}},
			{ID: "tab-2", Title: "Rich", Elements: []WebElement{{Role: "AXButton"}, {Role: "AXLink"}},
				Frames: []BrowserFrame{{ID: "frame-1", Elements: []WebElement{{Role: "AXStaticText"}}}}},
			{ID: "tab-3", Title: "Empty"},
		},
	}

	ranks := RankTabsByContent(tree)
	if len(ranks) != 3 {
		t.Fatalf("len = %d, want 3", len(ranks))
	}
	if ranks[0].ID != "tab-2" || ranks[0].Count != 3 {
		t.Errorf("ranks[0] = %+v", ranks[0])
	}
	if ranks[1].ID != "tab-1" || ranks[2].ID != "tab-3" {
		t.Errorf("order = %s, %s", ranks[1].ID, ranks[2].ID)
	}
	if ranks[0].Tab != &tree.Tabs[1] {
		t.Error("rank does not point into the tree")
	}
}

// Equal counts keep tab order: the first tab wins.
func TestRankTabsTieKeepsTabOrder(t *testing.T) {
	tree := &BrowserAccessibilityTree{
		Tabs: []BrowserTab{
			{ID: "tab-1", Elements: []WebElement{{Role: "AXButton"}}},
			{ID: "tab-2", Elements: []WebElement{{Role: "AXLink"}}},
		},
	}
	ranks := RankTabsByContent(tree)
	if ranks[0].ID != "tab-1" {
		t.Errorf("tie broken against tab order: %s first", ranks[0].ID)
	}
}

func TestPrimaryTab(t *testing.T) {
	tree := &BrowserAccessibilityTree{
		ActiveTabID: "tab-1",
		Tabs: []BrowserTab{
			{ID: "tab-1", Elements: []WebElement{{Role: "AXButton"}}},
			{ID: "tab-2", Elements: []WebElement{{Role: "AXButton"}, {Role: "AXLink"}}},
		},
	}
	if tab := PrimaryTab(tree); tab == nil || tab.ID != "tab-1" {
		t.Errorf("active tab with content not chosen: %+v", tab)
	}

	// An active tab with zero elements is chrome; the richest tab wins.
	tree.Tabs[0].Elements = nil
	if tab := PrimaryTab(tree); tab == nil || tab.ID != "tab-2" {
		t.Errorf("empty active tab not displaced: %+v", tab)
	}

	if tab := PrimaryTab(&BrowserAccessibilityTree{}); tab != nil {
		t.Errorf("empty tree produced a tab: %+v", tab)
	}
}
