// Package appkind models running-application identity and classifies apps
// into detection categories (browser, PDF reader, system app, Electron,
// Java, native) with a confidence score.
package appkind

import "fmt"

// Category classifies an application for detection-strategy selection.
type Category int

const (
	Unknown Category = iota
	WebBrowser
	PDFReader
	NativeApp
	SystemApp
	ElectronApp
	JavaApp
)

var categoryNames = map[Category]string{
	Unknown:     "unknown",
	WebBrowser:  "web_browser",
	PDFReader:   "pdf_reader",
	NativeApp:   "native_app",
	SystemApp:   "system_app",
	ElectronApp: "electron_app",
	JavaApp:     "java_app",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so Category serializes as
// its name in both JSON and YAML output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory converts a category name back to its enum value.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("unknown category: %q", s)
}

// BrowserFamily identifies a specific browser engine family.
// FamilyNone means the application is not a browser.
type BrowserFamily int

const (
	FamilyNone BrowserFamily = iota
	Chrome
	Safari
	Firefox
	Edge
	UnknownBrowser
)

var familyNames = map[BrowserFamily]string{
	FamilyNone:     "",
	Chrome:         "chrome",
	Safari:         "safari",
	Firefox:        "firefox",
	Edge:           "edge",
	UnknownBrowser: "unknown_browser",
}

func (f BrowserFamily) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}
	return "unknown_browser"
}

// MarshalText implements encoding.TextMarshaler.
func (f BrowserFamily) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *BrowserFamily) UnmarshalText(text []byte) error {
	parsed, err := ParseBrowserFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseBrowserFamily converts a family name back to its enum value.
// The empty string parses to FamilyNone.
func ParseBrowserFamily(s string) (BrowserFamily, error) {
	for f, name := range familyNames {
		if name == s {
			return f, nil
		}
	}
	return FamilyNone, fmt.Errorf("unknown browser family: %q", s)
}

// BundleUnknown is the sentinel bundle identifier for apps whose bundle id
// could not be resolved.
const BundleUnknown = "unknown"

// ApplicationInfo is an identity snapshot of a running application.
//
// Family is set only when Category is WebBrowser. Confidence reflects
// provenance: direct OS query >=0.9, AppleScript fallback <=0.85,
// process-list heuristic <=0.5, never-detected default <=0.3.
type ApplicationInfo struct {
	Name       string        `yaml:"name"                     json:"name"`
	BundleID   string        `yaml:"bundle_id"                json:"bundle_id"`
	PID        int           `yaml:"pid,omitempty"            json:"pid,omitempty"`
	Category   Category      `yaml:"category"                 json:"category"`
	Family     BrowserFamily `yaml:"browser_family,omitempty" json:"browser_family,omitempty"`
	Version    string        `yaml:"version,omitempty"        json:"version,omitempty"`
	AXEnabled  bool          `yaml:"ax_enabled"               json:"ax_enabled"`
	Confidence float64       `yaml:"confidence"               json:"confidence"`
}
