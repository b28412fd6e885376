// Package browser extracts a structured model of browser tabs, frames, and
// page elements from the accessibility tree.
package browser

import (
	"time"

	"github.com/axscope/axscope/internal/appkind"
	"github.com/axscope/axscope/internal/platform"
)

// WebElement is one accessibility node inside a browser page.
type WebElement struct {
	Role        string            `yaml:"role"                  json:"role"`
	Title       string            `yaml:"title,omitempty"       json:"title,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Value       string            `yaml:"value,omitempty"       json:"value,omitempty"`
	URL         string            `yaml:"url,omitempty"         json:"url,omitempty"`
	Bounds      *platform.Rect    `yaml:"bounds,omitempty"      json:"bounds,omitempty"`
	Enabled     bool              `yaml:"enabled"               json:"enabled"`
	FrameID     string            `yaml:"frame_id,omitempty"    json:"frame_id,omitempty"`
	TabID       string            `yaml:"tab_id,omitempty"      json:"tab_id,omitempty"`
	ElementID   string            `yaml:"element_id,omitempty"  json:"element_id,omitempty"`
	Attrs       map[string]string `yaml:"attrs,omitempty"       json:"attrs,omitempty"`
}

// Center returns the element's center point. It is always derived from
// Bounds; an element without geometry has no center.
func (e *WebElement) Center() (platform.Point, bool) {
	if e.Bounds == nil {
		return platform.Point{}, false
	}
	return platform.Point{
		X: e.Bounds.X + e.Bounds.Width/2,
		Y: e.Bounds.Y + e.Bounds.Height/2,
	}, true
}

// BrowserFrame is one nested document (e.g. an iframe) inside a tab.
type BrowserFrame struct {
	ID            string       `yaml:"id"                        json:"id"`
	URL           string       `yaml:"url,omitempty"             json:"url,omitempty"`
	Title         string       `yaml:"title,omitempty"           json:"title,omitempty"`
	ParentFrameID string       `yaml:"parent_frame_id,omitempty" json:"parent_frame_id,omitempty"`
	Elements      []WebElement `yaml:"elements"                  json:"elements"`
}

// BrowserTab is one tab in a browser window.
type BrowserTab struct {
	ID       string         `yaml:"id"              json:"id"`
	Title    string         `yaml:"title"           json:"title"`
	URL      string         `yaml:"url,omitempty"   json:"url,omitempty"`
	Active   bool           `yaml:"active"          json:"active"`
	Elements []WebElement   `yaml:"elements"        json:"elements"`
	Frames   []BrowserFrame `yaml:"frames,omitempty" json:"frames,omitempty"`
}

// ElementCount is the tab's total content size: its direct elements plus
// every frame's elements. A count of zero marks the tab as browser chrome
// rather than page content.
func (t *BrowserTab) ElementCount() int {
	n := len(t.Elements)
	for _, f := range t.Frames {
		n += len(f.Elements)
	}
	return n
}

// BrowserAccessibilityTree is the aggregate result of one extraction pass.
type BrowserAccessibilityTree struct {
	Family      appkind.BrowserFamily `yaml:"browser_family" json:"browser_family"`
	AppName     string                `yaml:"app_name"       json:"app_name"`
	PID         int                   `yaml:"pid"            json:"pid"`
	Tabs        []BrowserTab          `yaml:"tabs"           json:"tabs"`
	ActiveTabID string                `yaml:"active_tab_id,omitempty" json:"active_tab_id,omitempty"`
	ExtractedAt time.Time             `yaml:"extracted_at"   json:"extracted_at"`
}

// ActiveTab resolves the active tab: by ActiveTabID first, else the first
// tab flagged Active, else nil. Downstream content-quality heuristics
// depend on this exact fallback order.
func (t *BrowserAccessibilityTree) ActiveTab() *BrowserTab {
	if t.ActiveTabID != "" {
		for i := range t.Tabs {
			if t.Tabs[i].ID == t.ActiveTabID {
				return &t.Tabs[i]
			}
		}
	}
	for i := range t.Tabs {
		if t.Tabs[i].Active {
			return &t.Tabs[i]
		}
	}
	return nil
}

// AllElements flattens tab-level elements plus every frame's elements
// across every tab, in tab order then frame order. The ordering is
// significant: deterministic "most content-rich tab" selection relies on it.
func (t *BrowserAccessibilityTree) AllElements() []WebElement {
	var out []WebElement
	for i := range t.Tabs {
		out = append(out, t.Tabs[i].Elements...)
		for j := range t.Tabs[i].Frames {
			out = append(out, t.Tabs[i].Frames[j].Elements...)
		}
	}
	return out
}
