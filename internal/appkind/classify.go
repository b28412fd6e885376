package appkind

import "strings"

// Classification confidence levels, from most to least authoritative.
// Bundle ids outrank display names, and browsers outrank the generic name
// patterns; the precedence chain in Classify depends on these relationships.
const (
	confBundleTable   = 0.95
	confElectronTable = 0.90
	confJavaTable     = 0.90
	confNameHint      = 0.85
	confNamePattern   = 0.75
	confNativeDefault = 0.60
	confUnknownHint   = 0.60
	confUnknownUnknown = 0.30
)

// Classify determines an application's category, browser family, and
// classification confidence from its display name and bundle identifier.
// It never fails: absence of information degrades confidence instead.
//
// The precedence is a deliberate policy and must not be reordered:
// bundle-id tables before name matches, browsers before generic patterns.
func Classify(name, bundleID string) (Category, BrowserFamily, float64) {
	lowerName := strings.ToLower(name)
	lowerBundle := strings.ToLower(bundleID)

	// 1. Unknown bundle id: fall back to name evidence only.
	if lowerBundle == BundleUnknown {
		for _, p := range namePatterns {
			if p.pattern.MatchString(lowerName) {
				family := FamilyNone
				if p.category == WebBrowser {
					family = FamilyFromName(lowerName)
				}
				return p.category, family, confUnknownHint
			}
		}
		if family := FamilyFromName(lowerName); family != UnknownBrowser {
			return WebBrowser, family, confNamePattern
		}
		return Unknown, FamilyNone, confUnknownUnknown
	}

	// 2. Browser bundle-id table.
	for key, family := range BrowserBundles {
		if strings.Contains(lowerBundle, key) {
			return WebBrowser, family, confBundleTable
		}
	}

	// 3. Browser name substring (lower confidence: bundle id is authoritative).
	for _, h := range browserNameHints {
		if strings.Contains(lowerName, h.hint) {
			return WebBrowser, h.family, confNameHint
		}
	}

	// 4. PDF readers, bundle id then name.
	for _, key := range PDFBundles {
		if strings.Contains(lowerBundle, key) {
			return PDFReader, FamilyNone, confBundleTable
		}
	}
	for _, hint := range pdfNameHints {
		if strings.Contains(lowerName, hint) {
			return PDFReader, FamilyNone, confNameHint
		}
	}

	// 5-7. System, Electron, Java bundle tables.
	for _, key := range SystemBundles {
		if strings.Contains(lowerBundle, key) {
			return SystemApp, FamilyNone, confBundleTable
		}
	}
	for _, key := range ElectronBundles {
		if strings.Contains(lowerBundle, key) {
			return ElectronApp, FamilyNone, confElectronTable
		}
	}
	for _, key := range JavaBundles {
		if strings.Contains(lowerBundle, key) {
			return JavaApp, FamilyNone, confJavaTable
		}
	}

	// 8. Generic name patterns.
	for _, p := range namePatterns {
		if p.pattern.MatchString(lowerName) {
			family := FamilyNone
			if p.category == WebBrowser {
				family = FamilyFromName(lowerName)
			}
			return p.category, family, confNamePattern
		}
	}

	// 9. A resolvable bundle id with no other match is a legitimate native app.
	return NativeApp, FamilyNone, confNativeDefault
}

// FamilyFromName maps a display-name substring to a browser family,
// defaulting to UnknownBrowser.
func FamilyFromName(name string) BrowserFamily {
	lower := strings.ToLower(name)
	for _, h := range browserNameHints {
		if strings.Contains(lower, h.hint) {
			return h.family
		}
	}
	return UnknownBrowser
}
