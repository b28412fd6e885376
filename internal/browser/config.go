package browser

import "github.com/axscope/axscope/internal/appkind"

// familyConfig is the per-browser-family extraction tuning: which roles
// count as page content, which indicate tabs and frames, and how deep the
// walk may go.
type familyConfig struct {
	WebContentRoles []string
	NavigationRoles []string
	FrameRoles      []string
	TabRoles        []string
	MaxDepth        int
	TimeoutMS       int
	FuzzyThreshold  float64
}

// Walk bounds shared by every family.
const (
	tabSearchDepth   = 5
	frameSearchDepth = 8
)

var chromeConfig = familyConfig{
	WebContentRoles: []string{"AXButton", "AXLink", "AXTextField", "AXTextArea", "AXStaticText", "AXImage", "AXHeading", "AXCheckBox", "AXRadioButton", "AXPopUpButton", "AXComboBox", "AXMenuItem"},
	NavigationRoles: []string{"AXToolbar", "AXMenuBar", "AXTabGroup"},
	FrameRoles:      []string{"AXWebArea"},
	TabRoles:        []string{"AXTab", "AXRadioButton"},
	MaxDepth:        12,
	TimeoutMS:       3500,
	FuzzyThreshold:  0.72,
}

var safariConfig = familyConfig{
	WebContentRoles: []string{"AXButton", "AXLink", "AXTextField", "AXTextArea", "AXStaticText", "AXImage", "AXHeading", "AXCheckBox", "AXPopUpButton"},
	NavigationRoles: []string{"AXToolbar", "AXMenuBar", "AXTabGroup"},
	FrameRoles:      []string{"AXWebArea"},
	TabRoles:        []string{"AXTab"},
	MaxDepth:        10,
	TimeoutMS:       3000,
	FuzzyThreshold:  0.76,
}

var firefoxConfig = familyConfig{
	WebContentRoles: []string{"AXButton", "AXLink", "AXTextField", "AXTextArea", "AXStaticText", "AXImage", "AXHeading", "AXCheckBox"},
	NavigationRoles: []string{"AXToolbar", "AXMenuBar", "AXTabGroup"},
	FrameRoles:      []string{"AXWebArea"},
	TabRoles:        []string{"AXTab"},
	MaxDepth:        10,
	TimeoutMS:       2800,
	FuzzyThreshold:  0.80,
}

var edgeConfig = familyConfig{
	WebContentRoles: []string{"AXButton", "AXLink", "AXTextField", "AXTextArea", "AXStaticText", "AXImage", "AXHeading", "AXCheckBox", "AXRadioButton", "AXPopUpButton", "AXComboBox"},
	NavigationRoles: []string{"AXToolbar", "AXMenuBar", "AXTabGroup"},
	FrameRoles:      []string{"AXWebArea"},
	TabRoles:        []string{"AXTab", "AXRadioButton"},
	MaxDepth:        12,
	TimeoutMS:       3200,
	FuzzyThreshold:  0.74,
}

var familyConfigs = map[appkind.BrowserFamily]familyConfig{
	appkind.Chrome:  chromeConfig,
	appkind.Safari:  safariConfig,
	appkind.Firefox: firefoxConfig,
	appkind.Edge:    edgeConfig,
}

// configFor returns the family's tuning. An unknown family falls back to
// the Chrome config, which is the widest.
func configFor(family appkind.BrowserFamily) familyConfig {
	if cfg, ok := familyConfigs[family]; ok {
		return cfg
	}
	return chromeConfig
}

func roleSet(roles []string) map[string]bool {
	set := make(map[string]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}
