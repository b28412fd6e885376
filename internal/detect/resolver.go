// Package detect resolves the user's current foreground application through
// a layered fallback chain and classifies it.
package detect

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/axscope/axscope/internal/appkind"
	"github.com/axscope/axscope/internal/platform"
	"go.uber.org/zap"
)

// Tier confidence values. Each later tier's value stays strictly below the
// previous tier's minimum so callers can treat confidence as a reliability
// ranking regardless of which tier produced the result.
const (
	confFrontmost    = 0.90 // tier 1, literal frontmost app
	confScript       = 0.85 // tier 2, AppleScript System Events query
	confInferred     = 0.75 // tier 1, user-app search behind an ignored dev tool
	confPreferred    = 0.50 // tier 3, preferred-app name scan
	confFirstRegular = 0.30 // tier 3, first regular-activation app
	confRawScript    = 0.20 // tier 3, raw AppleScript name-only query
)

// DefaultScriptTimeout is the hard subprocess timeout for AppleScript
// queries, enforced independently of any caller deadline.
const DefaultScriptTimeout = 10 * time.Second

// ignoredBundlePrefixes are developer tools that run the assistant itself.
// The frontmost app being one of these means the user's app is behind it.
var ignoredBundlePrefixes = []string{
	"com.apple.dt.xcode",
	"com.microsoft.vscode",
	"com.googlecode.iterm2",
	"com.apple.terminal",
	"com.jetbrains.",
	"com.sublimetext.",
	"com.github.atom",
	"dev.warp.warp",
	"com.apple.console",
	"com.apple.activitymonitor",
}

// systemShellPrefixes are macOS shell, menu-bar, and input-agent processes.
// User-facing Apple apps (Preview, Safari, Mail) are deliberately absent:
// the shell-process/user-application distinction is what makes detection
// land on the app the user is actually looking at.
var systemShellPrefixes = []string{
	"com.apple.dock",
	"com.apple.systemuiserver",
	"com.apple.controlcenter",
	"com.apple.notificationcenterui",
	"com.apple.spotlight",
	"com.apple.loginwindow",
	"com.apple.windowmanager",
	"com.apple.wallpaper",
	"com.apple.inputmethod",
	"com.apple.textinputmenuagent",
}

// priorityBundlePrefixes mark apps the user-app search prefers when no
// candidate is currently active: browsers, readers, editors.
var priorityBundlePrefixes = []string{
	"com.google.chrome",
	"com.apple.safari",
	"org.mozilla",
	"com.microsoft.edgemac",
	"com.brave.browser",
	"com.adobe",
	"com.apple.preview",
	"com.apple.textedit",
	"com.apple.notes",
}

// preferredAppNames is the final-fallback scan list, checked in running-app
// enumeration order.
var preferredAppNames = []string{
	"Safari",
	"Google Chrome",
	"Firefox",
	"Microsoft Edge",
	"Finder",
	"Terminal",
	"TextEdit",
	"System Preferences",
}

const frontmostScript = `tell application "System Events"
	set frontApp to first application process whose frontmost is true
	set appName to name of frontApp
	set appPid to unix id of frontApp
	try
		set appBundle to bundle identifier of frontApp
	on error
		set appBundle to "unknown"
	end try
end tell
return appName & "|" & appPid & "|" & appBundle`

const frontmostNameScript = `tell application "System Events" to return name of first application process whose frontmost is true`

// Resolver determines the current foreground application through three
// ordered fallback tiers: platform query, AppleScript, process-list
// heuristics. Each tier catches its own failures; only exhaustion of all
// three surfaces ErrNoApplication.
type Resolver struct {
	apps          platform.AppEnumerator
	scripts       platform.ScriptRunner
	ax            platform.AXClient
	cache         *InfoCache
	logger        *zap.Logger
	scriptTimeout time.Duration
}

// NewResolver creates a resolver over the provider's capabilities. cache
// may be nil to disable caching; a nil logger disables logging.
func NewResolver(p *platform.Provider, cache *InfoCache, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{cache: cache, logger: logger, scriptTimeout: DefaultScriptTimeout}
	if p != nil {
		r.apps = p.Apps
		r.scripts = p.Scripts
		r.ax = p.AX
	}
	return r
}

// SetScriptTimeout overrides the AppleScript subprocess timeout.
func (r *Resolver) SetScriptTimeout(d time.Duration) {
	if d > 0 {
		r.scriptTimeout = d
	}
}

// Resolve returns the current foreground application, classified. The
// result's confidence reflects which tier produced it.
func (r *Resolver) Resolve(ctx context.Context) (*appkind.ApplicationInfo, error) {
	if app, conf, err := r.resolveFrontmost(); err == nil {
		return r.finish(app, conf), nil
	} else {
		r.logger.Warn("platform detection failed, trying applescript", zap.Error(err))
	}

	if app, conf, err := r.resolveViaScript(ctx); err == nil {
		return r.finish(app, conf), nil
	} else {
		r.logger.Warn("applescript detection failed, trying heuristics", zap.Error(err))
	}

	if app, conf, err := r.resolveFallback(ctx); err == nil {
		return r.finish(app, conf), nil
	} else {
		r.logger.Warn("all detection tiers exhausted", zap.Error(err))
	}

	return nil, platform.ErrNoApplication
}

// finish classifies the resolved app and builds its snapshot, serving a
// previous snapshot from the name-keyed cache when present.
func (r *Resolver) finish(app platform.RunningApp, confidence float64) *appkind.ApplicationInfo {
	if cached := r.cache.Get(app.Name); cached != nil {
		return cached
	}

	bundleID := app.BundleID
	if bundleID == "" {
		bundleID = appkind.BundleUnknown
	}
	category, family, _ := appkind.Classify(app.Name, bundleID)

	info := &appkind.ApplicationInfo{
		Name:       app.Name,
		BundleID:   bundleID,
		PID:        app.PID,
		Category:   category,
		Family:     family,
		AXEnabled:  r.ax != nil && r.ax.Trusted(),
		Confidence: confidence,
	}
	r.cache.Put(info)
	return info
}

// resolveFrontmost is tier 1: the platform's frontmost-application query.
// When the frontmost app is an ignored developer tool, the running-app list
// is searched for the app the user is actually working in.
func (r *Resolver) resolveFrontmost() (platform.RunningApp, float64, error) {
	if r.apps == nil {
		return platform.RunningApp{}, 0, platform.ErrCapabilityUnavailable
	}
	front, err := r.apps.FrontmostApp()
	if err != nil {
		return platform.RunningApp{}, 0, err
	}
	if !isIgnoredBundle(front.BundleID) {
		return front, confFrontmost, nil
	}

	apps, err := r.apps.RunningApps()
	if err != nil {
		// Can't search; the ignored frontmost app is better than nothing.
		return front, confInferred, nil
	}

	var candidates []platform.RunningApp
	for _, a := range apps {
		if a.Policy != 0 || a.Hidden || isIgnoredBundle(a.BundleID) || isSystemApp(a) {
			continue
		}
		candidates = append(candidates, a)
	}

	if picked, ok := highestPID(candidates, func(a platform.RunningApp) bool { return a.Active }); ok {
		return picked, confInferred, nil
	}
	if picked, ok := highestPID(candidates, func(a platform.RunningApp) bool { return isPriorityBundle(a.BundleID) }); ok {
		return picked, confInferred, nil
	}
	if picked, ok := highestPID(candidates, func(platform.RunningApp) bool { return true }); ok {
		return picked, confInferred, nil
	}
	return front, confInferred, nil
}

// resolveViaScript is tier 2: a System Events query over osascript with a
// hard subprocess timeout.
func (r *Resolver) resolveViaScript(ctx context.Context) (platform.RunningApp, float64, error) {
	if r.scripts == nil {
		return platform.RunningApp{}, 0, platform.ErrCapabilityUnavailable
	}
	out, err := r.scripts.Run(ctx, frontmostScript, r.scriptTimeout)
	if err != nil {
		return platform.RunningApp{}, 0, err
	}
	parts := strings.Split(strings.TrimSpace(out), "|")
	if len(parts) != 3 {
		return platform.RunningApp{}, 0, platform.ErrMalformedResponse
	}
	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return platform.RunningApp{}, 0, platform.ErrMalformedResponse
	}
	bundleID := strings.TrimSpace(parts[2])
	if bundleID == "" {
		bundleID = appkind.BundleUnknown
	}
	return platform.RunningApp{
		Name:     strings.TrimSpace(parts[0]),
		BundleID: bundleID,
		PID:      pid,
	}, confScript, nil
}

// resolveFallback is tier 3: scan running apps for a fixed preferred-name
// list, then any regular-activation app, then a raw name-only AppleScript.
func (r *Resolver) resolveFallback(ctx context.Context) (platform.RunningApp, float64, error) {
	if r.apps != nil {
		if apps, err := r.apps.RunningApps(); err == nil {
			for _, a := range apps {
				for _, name := range preferredAppNames {
					if a.Name == name {
						return a, confPreferred, nil
					}
				}
			}
			for _, a := range apps {
				if a.Policy == 0 && !strings.HasPrefix(strings.ToLower(a.Name), "com.") {
					return a, confFirstRegular, nil
				}
			}
		}
	}

	if r.scripts != nil {
		out, err := r.scripts.Run(ctx, frontmostNameScript, r.scriptTimeout)
		if err == nil && strings.TrimSpace(out) != "" {
			return platform.RunningApp{
				Name:     strings.TrimSpace(out),
				BundleID: appkind.BundleUnknown,
			}, confRawScript, nil
		}
	}

	return platform.RunningApp{}, 0, platform.ErrNoApplication
}

// highestPID picks the matching app with the largest pid (the most recently
// launched, as good a guess as any for "what the user was just using").
func highestPID(apps []platform.RunningApp, match func(platform.RunningApp) bool) (platform.RunningApp, bool) {
	var best platform.RunningApp
	found := false
	for _, a := range apps {
		if !match(a) {
			continue
		}
		if !found || a.PID > best.PID {
			best = a
			found = true
		}
	}
	return best, found
}

func isIgnoredBundle(bundleID string) bool {
	lower := strings.ToLower(bundleID)
	for _, prefix := range ignoredBundlePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func isPriorityBundle(bundleID string) bool {
	lower := strings.ToLower(bundleID)
	for _, prefix := range priorityBundlePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// isSystemApp excludes shell, menu-bar, and input-agent processes plus
// anything with a non-regular activation policy.
func isSystemApp(a platform.RunningApp) bool {
	if a.Policy != 0 {
		return true
	}
	lower := strings.ToLower(a.BundleID)
	for _, prefix := range systemShellPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
