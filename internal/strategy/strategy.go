// Package strategy selects and tunes accessibility-search parameters per
// application category, browser family, and free-text command.
package strategy

import "github.com/axscope/axscope/internal/appkind"

// DetectionStrategy is the search tuning bundle for one application
// category (plus optional browser family).
//
// Invariants: browsers always have HandleFrames and HandleTabs true and a
// timeout at least as long as the native-app timeout; system apps carry a
// higher fuzzy threshold (>=0.85) than browsers (<=0.80) because system UI
// text is exact while web text varies.
type DetectionStrategy struct {
	Category         appkind.Category      `yaml:"category"                 json:"category"`
	Family           appkind.BrowserFamily `yaml:"browser_family,omitempty" json:"browser_family,omitempty"`
	PreferredRoles   []string              `yaml:"preferred_roles"          json:"preferred_roles"`
	FallbackRoles    []string              `yaml:"fallback_roles"           json:"fallback_roles"`
	Attributes       []string              `yaml:"attributes"               json:"attributes"`
	TimeoutMS        int                   `yaml:"timeout_ms"               json:"timeout_ms"`
	MaxDepth         int                   `yaml:"max_depth"                json:"max_depth"`
	CacheTTLSec      int                   `yaml:"cache_ttl_sec"            json:"cache_ttl_sec"`
	FuzzyThreshold   float64               `yaml:"fuzzy_threshold"          json:"fuzzy_threshold"`
	FuzzyEnabled     bool                  `yaml:"fuzzy_enabled"            json:"fuzzy_enabled"`
	HandleFrames     bool                  `yaml:"handle_frames"            json:"handle_frames"`
	HandleTabs       bool                  `yaml:"handle_tabs"              json:"handle_tabs"`
	DetectWebContent bool                  `yaml:"detect_web_content"       json:"detect_web_content"`
	// ParallelSearch is plumbed through but not consumed by the tree walk;
	// it is a reserved extension point.
	ParallelSearch   bool `yaml:"parallel_search"   json:"parallel_search"`
	EarlyTermination bool `yaml:"early_termination" json:"early_termination"`
}

// Clone returns a deep copy. Base strategies are shared singletons, so a
// copy is mandatory before any per-app customization.
func (s *DetectionStrategy) Clone() *DetectionStrategy {
	c := *s
	c.PreferredRoles = append([]string(nil), s.PreferredRoles...)
	c.FallbackRoles = append([]string(nil), s.FallbackRoles...)
	c.Attributes = append([]string(nil), s.Attributes...)
	return &c
}

// SearchParameters is the per-command derivative of a strategy. It is
// computed fresh for every command and never cached, since it depends on
// the command's free text.
type SearchParameters struct {
	Roles            []string `yaml:"roles"             json:"roles"`
	Attributes       []string `yaml:"attributes"        json:"attributes"`
	TimeoutMS        int      `yaml:"timeout_ms"        json:"timeout_ms"`
	MaxDepth         int      `yaml:"max_depth"         json:"max_depth"`
	FuzzyThreshold   float64  `yaml:"fuzzy_threshold"   json:"fuzzy_threshold"`
	Parallel         bool     `yaml:"parallel"          json:"parallel"`
	EarlyTermination bool     `yaml:"early_termination" json:"early_termination"`
	SearchFrames     bool     `yaml:"search_frames"     json:"search_frames"`
	SearchTabs       bool     `yaml:"search_tabs"       json:"search_tabs"`
	WebContentOnly   bool     `yaml:"web_content_only"  json:"web_content_only"`
}
