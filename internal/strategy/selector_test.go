package strategy

import (
	"testing"

	"github.com/axscope/axscope/internal/appkind"
)

func chromeInfo() *appkind.ApplicationInfo {
	return &appkind.ApplicationInfo{
		Name:     "Google Chrome",
		BundleID: "com.google.Chrome",
		Category: appkind.WebBrowser,
		Family:   appkind.Chrome,
	}
}

func TestSelectCachesByCategoryAndFamily(t *testing.T) {
	s := NewSelector(nil)

	first := s.Select(chromeInfo())
	second := s.Select(chromeInfo())
	if first != second {
		t.Error("equal (category, family) pair did not return the cached instance")
	}

	// A different app in the same (category, family) pair shares the entry.
	brave := &appkind.ApplicationInfo{
		Name:     "Brave Browser",
		BundleID: "com.brave.Browser",
		Category: appkind.WebBrowser,
		Family:   appkind.Chrome,
	}
	if s.Select(brave) != first {
		t.Error("same (category, family) pair built a second strategy")
	}

	safari := &appkind.ApplicationInfo{
		Name:     "Safari",
		Category: appkind.WebBrowser,
		Family:   appkind.Safari,
	}
	if s.Select(safari) == first {
		t.Error("different family returned the chrome strategy")
	}

	stats := s.CacheStats()
	if stats.Size != 2 {
		t.Errorf("cache size = %d, want 2", stats.Size)
	}
}

func TestSelectDoesNotMutateBaseSingletons(t *testing.T) {
	baseThreshold := systemStrategy.FuzzyThreshold
	baseRoles := append([]string(nil), systemStrategy.PreferredRoles...)

	s := NewSelector(nil)
	st := s.Select(&appkind.ApplicationInfo{
		Name:     "Terminal",
		BundleID: "com.apple.Terminal",
		Category: appkind.SystemApp,
	})

	if st.FuzzyThreshold != 0.90 {
		t.Errorf("terminal fuzzy threshold = %v, want 0.90", st.FuzzyThreshold)
	}
	if st.PreferredRoles[0] != "AXStaticText" {
		t.Errorf("terminal preferred roles = %v", st.PreferredRoles)
	}

	if systemStrategy.FuzzyThreshold != baseThreshold {
		t.Errorf("base threshold mutated: %v", systemStrategy.FuzzyThreshold)
	}
	if len(systemStrategy.PreferredRoles) != len(baseRoles) {
		t.Fatalf("base role list mutated: %v", systemStrategy.PreferredRoles)
	}
	for i, r := range baseRoles {
		if systemStrategy.PreferredRoles[i] != r {
			t.Errorf("base role %d mutated: %v", i, systemStrategy.PreferredRoles)
		}
	}
}

func TestSelectFamilySpecialization(t *testing.T) {
	tests := []struct {
		family    appkind.BrowserFamily
		timeoutMS int
		threshold float64
	}{
		{appkind.Chrome, 3500, 0.72},
		{appkind.Edge, 3200, 0.74},
		{appkind.Safari, 3000, 0.76},
		{appkind.Firefox, 2800, 0.80},
	}
	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			s := NewSelector(nil)
			st := s.Select(&appkind.ApplicationInfo{
				Name:     "Browser",
				Category: appkind.WebBrowser,
				Family:   tt.family,
			})
			if st.TimeoutMS != tt.timeoutMS {
				t.Errorf("timeout = %d, want %d", st.TimeoutMS, tt.timeoutMS)
			}
			if st.FuzzyThreshold != tt.threshold {
				t.Errorf("threshold = %v, want %v", st.FuzzyThreshold, tt.threshold)
			}
			if !st.HandleFrames || !st.HandleTabs {
				t.Error("browser strategy must handle frames and tabs")
			}
			if st.TimeoutMS < nativeStrategy.TimeoutMS {
				t.Errorf("browser timeout %d below native %d", st.TimeoutMS, nativeStrategy.TimeoutMS)
			}
		})
	}
}

func TestSelectChromeWidensRoles(t *testing.T) {
	st := NewSelector(nil).Select(chromeInfo())
	want := map[string]bool{"AXComboBox": false, "AXRadioButton": false, "AXMenuItem": false}
	for _, r := range st.PreferredRoles {
		if _, ok := want[r]; ok {
			want[r] = true
		}
	}
	for r, found := range want {
		if !found {
			t.Errorf("chrome strategy missing role %s", r)
		}
	}
}

func TestCacheKey(t *testing.T) {
	if k := cacheKey(appkind.WebBrowser, appkind.Chrome); k != "web_browser_chrome" {
		t.Errorf("key = %q", k)
	}
	if k := cacheKey(appkind.SystemApp, appkind.FamilyNone); k != "system_app_none" {
		t.Errorf("key = %q", k)
	}
}

func TestClear(t *testing.T) {
	s := NewSelector(nil)
	first := s.Select(chromeInfo())
	s.Clear()
	if s.CacheStats().Size != 0 {
		t.Error("cache not empty after Clear")
	}
	if s.Select(chromeInfo()) == first {
		t.Error("Clear did not drop the cached instance")
	}
}

func TestAdaptRolePriorities(t *testing.T) {
	st := NewSelector(nil).Select(chromeInfo())

	tests := []struct {
		command string
		first   []string
	}{
		{"click the submit button", []string{"AXButton", "AXLink"}},
		{"click the login link", []string{"AXLink", "AXButton"}},
		{"type your name", []string{"AXTextField", "AXTextArea"}},
		{"enter the password", []string{"AXTextField", "AXTextArea"}},
		{"select a country", []string{"AXPopUpButton", "AXComboBox", "AXList"}},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			params := Adapt(st, tt.command)
			for i, want := range tt.first {
				if params.Roles[i] != want {
					t.Fatalf("roles = %v, want prefix %v", params.Roles, tt.first)
				}
			}
		})
	}
}

func TestAdaptRolesDeduplicated(t *testing.T) {
	st := NewSelector(nil).Select(chromeInfo())
	params := Adapt(st, "click ok")
	seen := make(map[string]bool)
	for _, r := range params.Roles {
		if seen[r] {
			t.Fatalf("duplicate role %s in %v", r, params.Roles)
		}
		seen[r] = true
	}
}

func TestAdaptWebContentNarrowing(t *testing.T) {
	browser := NewSelector(nil).Select(chromeInfo())
	params := Adapt(browser, "search for cat videos")
	if !params.WebContentOnly || !params.SearchFrames {
		t.Errorf("browser search command: WebContentOnly=%v SearchFrames=%v", params.WebContentOnly, params.SearchFrames)
	}

	native := NewSelector(nil).Select(&appkind.ApplicationInfo{
		Name:     "Pixelmator Pro",
		Category: appkind.NativeApp,
	})
	params = Adapt(native, "search for cat videos")
	if params.WebContentOnly {
		t.Error("non-browser command must never narrow to web content")
	}
}

func TestAdaptCarriesStrategyTuning(t *testing.T) {
	st := NewSelector(nil).Select(chromeInfo())
	params := Adapt(st, "")
	if params.TimeoutMS != st.TimeoutMS {
		t.Errorf("timeout = %d, want %d", params.TimeoutMS, st.TimeoutMS)
	}
	if params.MaxDepth != st.MaxDepth {
		t.Errorf("max depth = %d, want %d", params.MaxDepth, st.MaxDepth)
	}
	if params.FuzzyThreshold != st.FuzzyThreshold {
		t.Errorf("threshold = %v, want %v", params.FuzzyThreshold, st.FuzzyThreshold)
	}
	if !params.SearchTabs {
		t.Error("browser params must search tabs")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := browserStrategy.Clone()
	c := orig.Clone()
	c.PreferredRoles[0] = "AXChanged"
	c.TimeoutMS = 1
	if orig.PreferredRoles[0] == "AXChanged" {
		t.Error("Clone shares the preferred-roles slice")
	}
	if orig.TimeoutMS == 1 {
		t.Error("Clone shares scalar state")
	}
}
