// Package platform defines the OS capability interfaces the detection and
// extraction core is built on: accessibility attribute queries, running
// application enumeration, and AppleScript execution. Platform-specific
// packages register a Provider via NewProviderFunc.
package platform

import (
	"context"
	"time"
)

// Element is an opaque accessibility element handle. Handles are owned by
// the AXClient that produced them and are only meaningful to it.
type Element interface{}

// Point is a screen coordinate.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Size is an element extent.
type Size struct {
	Width  float64 `yaml:"w" json:"w"`
	Height float64 `yaml:"h" json:"h"`
}

// Rect is element geometry in screen coordinates.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"w" json:"w"`
	Height float64 `yaml:"h" json:"h"`
}

// Accessibility attribute names understood by AXClient implementations.
const (
	AttrRole            = "AXRole"
	AttrRoleDescription = "AXRoleDescription"
	AttrTitle           = "AXTitle"
	AttrValue           = "AXValue"
	AttrDescription     = "AXDescription"
	AttrURL             = "AXURL"
	AttrDocument        = "AXDocument"
	AttrEnabled         = "AXEnabled"
	AttrFocused         = "AXFocused"
	AttrSelected        = "AXSelected"
	AttrPosition        = "AXPosition"
	AttrSize            = "AXSize"
	AttrChildren        = "AXChildren"
	AttrWindows         = "AXWindows"
)

// AXClient is the accessibility query capability.
//
// Attr returns the attribute's value as one of: string, bool, float64,
// Point, Size, Element, or []Element. Any failure (attribute absent, stale
// element, permission denied) is reported uniformly as ErrElementUnreachable;
// callers must not try to distinguish the causes.
type AXClient interface {
	// AppElement returns the root accessibility element for a process.
	AppElement(pid int) (Element, error)
	// Attr copies one attribute of an element.
	Attr(el Element, name string) (interface{}, error)
	// Trusted reports whether the process has accessibility permission.
	Trusted() bool
}

// RunningApp is one running-application record from the OS.
type RunningApp struct {
	Name     string `yaml:"name"      json:"name"`
	BundleID string `yaml:"bundle_id" json:"bundle_id"`
	PID      int    `yaml:"pid"       json:"pid"`
	Hidden   bool   `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Active   bool   `yaml:"active,omitempty" json:"active,omitempty"`
	// Policy is the activation policy: 0 = regular user-facing app.
	Policy int `yaml:"policy" json:"policy"`
}

// AppEnumerator is the process enumeration capability.
type AppEnumerator interface {
	// FrontmostApp returns the currently frontmost application.
	FrontmostApp() (RunningApp, error)
	// RunningApps returns all running applications in OS enumeration order.
	RunningApps() ([]RunningApp, error)
}

// ScriptRunner executes an AppleScript source string and returns its
// trimmed stdout. The timeout is enforced on the subprocess itself,
// independent of any deadline already on ctx.
type ScriptRunner interface {
	Run(ctx context.Context, script string, timeout time.Duration) (string, error)
}
