package strategy

import (
	"strings"

	"github.com/axscope/axscope/internal/appkind"
)

// Base strategies, one per category. These are shared singletons: Select
// clones them before family specialization and per-app customization.
// Sharing the slices across cached strategies would let one app's overrides
// leak into another's.
var (
	browserStrategy = &DetectionStrategy{
		Category:         appkind.WebBrowser,
		PreferredRoles:   []string{"AXButton", "AXLink", "AXTextField", "AXTextArea", "AXStaticText", "AXImage", "AXPopUpButton", "AXCheckBox"},
		FallbackRoles:    []string{"AXGroup", "AXScrollArea", "AXWebArea"},
		Attributes:       []string{"AXTitle", "AXValue", "AXDescription", "AXURL", "AXEnabled"},
		TimeoutMS:        3000,
		MaxDepth:         10,
		CacheTTLSec:      30,
		FuzzyThreshold:   0.80,
		FuzzyEnabled:     true,
		HandleFrames:     true,
		HandleTabs:       true,
		DetectWebContent: true,
		EarlyTermination: true,
	}

	nativeStrategy = &DetectionStrategy{
		Category:         appkind.NativeApp,
		PreferredRoles:   []string{"AXButton", "AXTextField", "AXStaticText", "AXCheckBox", "AXPopUpButton", "AXMenuItem"},
		FallbackRoles:    []string{"AXGroup", "AXToolbar"},
		Attributes:       []string{"AXTitle", "AXValue", "AXDescription", "AXEnabled"},
		TimeoutMS:        2000,
		MaxDepth:         8,
		CacheTTLSec:      30,
		FuzzyThreshold:   0.82,
		FuzzyEnabled:     true,
		EarlyTermination: true,
	}

	systemStrategy = &DetectionStrategy{
		Category:         appkind.SystemApp,
		PreferredRoles:   []string{"AXButton", "AXTextField", "AXStaticText", "AXCheckBox", "AXRadioButton", "AXPopUpButton"},
		FallbackRoles:    []string{"AXGroup", "AXToolbar"},
		Attributes:       []string{"AXTitle", "AXValue", "AXDescription", "AXEnabled"},
		TimeoutMS:        1500,
		MaxDepth:         8,
		CacheTTLSec:      30,
		FuzzyThreshold:   0.88,
		FuzzyEnabled:     true,
		EarlyTermination: true,
	}

	electronStrategy = &DetectionStrategy{
		Category:         appkind.ElectronApp,
		PreferredRoles:   []string{"AXButton", "AXLink", "AXTextField", "AXTextArea", "AXStaticText", "AXImage"},
		FallbackRoles:    []string{"AXGroup", "AXWebArea"},
		Attributes:       []string{"AXTitle", "AXValue", "AXDescription", "AXEnabled"},
		TimeoutMS:        2500,
		MaxDepth:         10,
		CacheTTLSec:      30,
		FuzzyThreshold:   0.78,
		FuzzyEnabled:     true,
		HandleFrames:     true,
		DetectWebContent: true,
		EarlyTermination: true,
	}

	javaStrategy = &DetectionStrategy{
		Category:         appkind.JavaApp,
		PreferredRoles:   []string{"AXButton", "AXTextField", "AXStaticText", "AXList", "AXTable"},
		FallbackRoles:    []string{"AXGroup", "AXScrollArea"},
		Attributes:       []string{"AXTitle", "AXValue", "AXDescription", "AXEnabled"},
		TimeoutMS:        3000,
		MaxDepth:         10,
		CacheTTLSec:      30,
		FuzzyThreshold:   0.85,
		FuzzyEnabled:     true,
		EarlyTermination: true,
	}

	defaultStrategy = &DetectionStrategy{
		Category:         appkind.Unknown,
		PreferredRoles:   []string{"AXButton", "AXStaticText", "AXTextField", "AXGroup"},
		FallbackRoles:    []string{"AXScrollArea", "AXToolbar"},
		Attributes:       []string{"AXTitle", "AXValue", "AXDescription", "AXEnabled"},
		TimeoutMS:        2000,
		MaxDepth:         8,
		CacheTTLSec:      30,
		FuzzyThreshold:   0.85,
		FuzzyEnabled:     true,
		EarlyTermination: true,
	}
)

// baseFor maps a category to its base strategy singleton. PDF readers use
// the default tuning; they expose plain native trees with no web content.
func baseFor(category appkind.Category) *DetectionStrategy {
	switch category {
	case appkind.WebBrowser:
		return browserStrategy
	case appkind.NativeApp:
		return nativeStrategy
	case appkind.SystemApp:
		return systemStrategy
	case appkind.ElectronApp:
		return electronStrategy
	case appkind.JavaApp:
		return javaStrategy
	default:
		return defaultStrategy
	}
}

// specializeFamily tunes a cloned browser strategy for its family. Chrome
// gets the widest role list, the longest timeout, and the lowest fuzzy
// threshold: its DOM-to-AX mapping is the least stable, so matching must be
// the most forgiving. Safari and Firefox get progressively higher thresholds
// and shorter timeouts.
func specializeFamily(s *DetectionStrategy, family appkind.BrowserFamily) {
	s.Family = family
	switch family {
	case appkind.Chrome:
		s.PreferredRoles = append(s.PreferredRoles, "AXComboBox", "AXRadioButton", "AXMenuItem")
		s.TimeoutMS = 3500
		s.FuzzyThreshold = 0.72
	case appkind.Edge:
		s.PreferredRoles = append(s.PreferredRoles, "AXComboBox", "AXRadioButton")
		s.TimeoutMS = 3200
		s.FuzzyThreshold = 0.74
	case appkind.Safari:
		s.TimeoutMS = 3000
		s.FuzzyThreshold = 0.76
	case appkind.Firefox:
		s.TimeoutMS = 2800
		s.FuzzyThreshold = 0.80
	}
}

// customize applies hard-coded per-app overrides to a cloned strategy.
func customize(s *DetectionStrategy, appName string) {
	lower := strings.ToLower(appName)
	switch {
	case strings.Contains(lower, "mail"), strings.Contains(lower, "messages"):
		// Message lists live in outline views.
		s.PreferredRoles = append([]string{"AXOutline"}, s.PreferredRoles...)
		s.Attributes = append(s.Attributes, "AXRoleDescription")
	case strings.Contains(lower, "finder"):
		s.PreferredRoles = append(s.PreferredRoles, "AXOutline", "AXTable", "AXColumn")
		s.MaxDepth = 12
	case strings.Contains(lower, "terminal"):
		// Terminal text must match near-exactly, unlike fuzzy web text.
		s.PreferredRoles = []string{"AXStaticText", "AXTextField", "AXButton"}
		s.FuzzyThreshold = 0.90
	}
}
