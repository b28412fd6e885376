package browser

import (
	"testing"

	"github.com/axscope/axscope/internal/strategy"
)

func findTree() *BrowserAccessibilityTree {
	return &BrowserAccessibilityTree{
		Tabs: []BrowserTab{
			{
				ID: "tab-1",
				Elements: []WebElement{
					{Role: "AXButton", Title: "Submit order", ElementID: "el-1"},
					{Role: "AXLink", Title: "Submit", ElementID: "el-2"},
					{Role: "AXStaticText", Value: "Submit your form below", ElementID: "el-3"},
					{Role: "AXButton", Title: "Cancel", ElementID: "el-4"},
				},
				Frames: []BrowserFrame{
					{ID: "frame-1", Elements: []WebElement{
						{Role: "AXButton", Title: "Submit", FrameID: "frame-1", ElementID: "el-5"},
					}},
				},
			},
		},
	}
}

func TestFindElementsRoleFilterAndThreshold(t *testing.T) {
	tree := findTree()
	params := strategy.SearchParameters{
		Roles:          []string{"AXButton"},
		FuzzyThreshold: 0.8,
	}

	matches := FindElements(tree, "submit", params)
	if len(matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(matches))
	}
	if matches[0].Element.ElementID != "el-1" {
		t.Errorf("matched %s, want el-1", matches[0].Element.ElementID)
	}
	if matches[0].Score != 1.0 {
		t.Errorf("score = %v, want 1.0 for containment", matches[0].Score)
	}
}

func TestFindElementsSearchesFramesWhenAsked(t *testing.T) {
	tree := findTree()
	params := strategy.SearchParameters{
		Roles:          []string{"AXButton"},
		FuzzyThreshold: 0.8,
		SearchFrames:   true,
	}
	matches := FindElements(tree, "submit", params)
	if len(matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(matches))
	}
}

func TestFindElementsRolePriorityOrdersResults(t *testing.T) {
	tree := findTree()
	params := strategy.SearchParameters{
		Roles:          []string{"AXLink", "AXButton", "AXStaticText"},
		FuzzyThreshold: 0.8,
	}
	matches := FindElements(tree, "submit", params)
	if len(matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(matches))
	}
	if matches[0].Element.Role != "AXLink" {
		t.Errorf("first match role = %s, want AXLink", matches[0].Element.Role)
	}
	if matches[1].Element.Role != "AXButton" || matches[2].Element.Role != "AXStaticText" {
		t.Errorf("order = %s, %s", matches[1].Element.Role, matches[2].Element.Role)
	}
}

func TestFindElementsEmptyRolesAllowsAll(t *testing.T) {
	tree := findTree()
	params := strategy.SearchParameters{FuzzyThreshold: 0.8}
	matches := FindElements(tree, "submit", params)
	if len(matches) != 3 {
		t.Fatalf("matches = %d, want 3 without a role filter", len(matches))
	}
}
