package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/axscope/axscope/internal/appkind"
	"github.com/axscope/axscope/internal/platform"
	"go.uber.org/zap"
)

// ErrNotBrowser is returned when extraction is requested for an
// application that is not classified as a web browser.
var ErrNotBrowser = errors.New("application is not a web browser")

// Extractor walks a browser's accessibility tree and builds a structured
// model of its tabs, frames, and page elements.
//
// The walk is synchronous and bounded by depth, not wall clock: strategy
// timeouts are advisory budget for callers, they are not enforced inside
// the traversal.
type Extractor struct {
	ax     platform.AXClient
	cache  *TreeCache
	logger *zap.Logger
}

// NewExtractor creates an extractor. cache may be nil to disable caching;
// a nil logger disables logging.
func NewExtractor(ax platform.AXClient, cache *TreeCache, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{ax: ax, cache: cache, logger: logger}
}

// Extract builds the accessibility tree for a browser application. A cache
// hit within the TTL returns the cached tree unmodified with no fresh walk.
//
// Extraction fails when the accessibility capability is unavailable, the
// app is not a browser, the OS produces no root element for the pid, or
// the root has no windows attribute. Per-node failures during the walk
// never fail the extraction: the offending subtree is treated as absent.
func (e *Extractor) Extract(info *appkind.ApplicationInfo) (*BrowserAccessibilityTree, error) {
	if e.ax == nil || !e.ax.Trusted() {
		return nil, platform.ErrCapabilityUnavailable
	}
	if info.Category != appkind.WebBrowser {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotBrowser, info.Name, info.Category)
	}

	if cached := e.cache.Get(info.Name, info.PID); cached != nil {
		return cached, nil
	}

	root, err := e.ax.AppElement(info.PID)
	if err != nil {
		return nil, fmt.Errorf("root element for pid %d: %w", info.PID, err)
	}
	winsAttr, err := e.ax.Attr(root, platform.AttrWindows)
	if err != nil {
		return nil, fmt.Errorf("windows of %s: %w", info.Name, err)
	}
	windows, ok := winsAttr.([]platform.Element)
	if !ok {
		return nil, fmt.Errorf("windows of %s: %w", info.Name, platform.ErrElementUnreachable)
	}

	cfg := configFor(info.Family)
	tree := &BrowserAccessibilityTree{
		Family:      info.Family,
		AppName:     info.Name,
		PID:         info.PID,
		ExtractedAt: time.Now(),
	}

	ids := newIDGen()
	for _, win := range windows {
		e.extractWindow(win, cfg, tree, ids)
	}

	// Active tab: first tab flagged active, else the first tab. Never
	// empty while any tab exists.
	for i := range tree.Tabs {
		if tree.Tabs[i].Active {
			tree.ActiveTabID = tree.Tabs[i].ID
			break
		}
	}
	if tree.ActiveTabID == "" && len(tree.Tabs) > 0 {
		tree.ActiveTabID = tree.Tabs[0].ID
	}

	e.cache.Put(tree)
	return tree, nil
}

// extractWindow discovers the window's tabs and fills in their content.
// A window with no tab-indicator elements is never reported as zero tabs:
// a single tab spanning the whole window is synthesized instead.
func (e *Extractor) extractWindow(win platform.Element, cfg familyConfig, tree *BrowserAccessibilityTree, ids *idGen) {
	tabRoles := roleSet(cfg.TabRoles)
	var tabEls []platform.Element
	e.findByRoles(win, tabRoles, 0, tabSearchDepth, &tabEls)

	if len(tabEls) == 0 {
		title := e.strAttr(win, platform.AttrTitle)
		if title == "" {
			title = "Untitled"
		}
		tab := BrowserTab{
			ID:     ids.next("tab"),
			Title:  title,
			URL:    e.strAttr(win, platform.AttrURL),
			Active: true,
		}
		e.fillTabContent(&tab, win, cfg, ids, true)
		tree.Tabs = append(tree.Tabs, tab)
		return
	}

	for _, el := range tabEls {
		title := e.strAttr(el, platform.AttrTitle)
		if title == "" {
			title = "Untitled"
		}
		tab := BrowserTab{
			ID:     ids.next("tab"),
			Title:  title,
			URL:    e.strAttr(el, platform.AttrURL),
			Active: e.boolAttr(el, platform.AttrFocused) || e.boolAttr(el, platform.AttrSelected),
		}
		e.fillTabContent(&tab, el, cfg, ids, false)
		tree.Tabs = append(tree.Tabs, tab)
	}
}

// fillTabContent collects the tab's direct elements and its frames. When
// the tab was synthesized from a whole window, descent additionally stops
// at navigation-role subtrees (toolbars, menu bars, the tab strip): those
// are browser chrome, not page content.
func (e *Extractor) fillTabContent(tab *BrowserTab, rootEl platform.Element, cfg familyConfig, ids *idGen, wholeWindow bool) {
	contentRoles := roleSet(cfg.WebContentRoles)
	frameRoles := roleSet(cfg.FrameRoles)

	// Direct elements: everything matching the content allow-list that is
	// not inside a frame. Frame subtrees are collected separately below, so
	// the walk stops at frame-indicator nodes to avoid double-collection.
	stopRoles := frameRoles
	if wholeWindow {
		stopRoles = roleSet(append(append([]string(nil), cfg.FrameRoles...), cfg.NavigationRoles...))
	}
	e.collectElements(rootEl, contentRoles, stopRoles, tab.ID, "", 0, cfg.MaxDepth, ids, &tab.Elements)

	// Frames inherit the tab's own family config for their content walk:
	// a frame inside a Firefox tab is still Firefox.
	var hits []frameHit
	e.findFrames(rootEl, frameRoles, 0, frameSearchDepth, -1, &hits)
	for _, hit := range hits {
		frame := BrowserFrame{
			ID:    ids.next("frame"),
			Title: e.strAttr(hit.el, platform.AttrTitle),
			URL:   e.strAttr(hit.el, platform.AttrURL),
		}
		if frame.URL == "" {
			frame.URL = e.strAttr(hit.el, platform.AttrDocument)
		}
		if hit.parent >= 0 {
			frame.ParentFrameID = tab.Frames[hit.parent].ID
		}
		e.collectElements(hit.el, contentRoles, frameRoles, tab.ID, frame.ID, 0, cfg.MaxDepth, ids, &frame.Elements)
		tab.Frames = append(tab.Frames, frame)
	}
}

// collectElements walks the subtree depth-first, pre-order, appending every
// node whose role is in contentRoles. A node that fails attribute access is
// skipped together with its subtree; this is the traversal policy, not an
// error. Descent stops at stop-role nodes below the root (frame indicators,
// and browser chrome for whole-window tabs) so their content is either
// collected by the frame's own walk or not at all.
func (e *Extractor) collectElements(el platform.Element, contentRoles, stopRoles map[string]bool, tabID, frameID string, depth, maxDepth int, ids *idGen, out *[]WebElement) {
	if depth > maxDepth {
		return
	}
	role, err := e.roleOf(el)
	if err != nil {
		e.logger.Debug("skipping unreachable node", zap.String("tab", tabID), zap.Error(err))
		return
	}
	if depth > 0 && stopRoles[role] {
		return
	}
	if contentRoles[role] {
		*out = append(*out, e.webElement(el, role, tabID, frameID, ids))
	}
	for _, child := range e.childrenOf(el) {
		e.collectElements(child, contentRoles, stopRoles, tabID, frameID, depth+1, maxDepth, ids, out)
	}
}

// frameHit is a discovered frame element and the index of its enclosing
// frame in discovery order (-1 for top-level frames).
type frameHit struct {
	el     platform.Element
	parent int
}

// findFrames locates frame-indicator nodes in pre-order, tracking nesting.
func (e *Extractor) findFrames(el platform.Element, frameRoles map[string]bool, depth, maxDepth, parent int, out *[]frameHit) {
	if depth > maxDepth {
		return
	}
	role, err := e.roleOf(el)
	if err != nil {
		return
	}
	next := parent
	if depth > 0 && frameRoles[role] {
		*out = append(*out, frameHit{el: el, parent: parent})
		next = len(*out) - 1
	}
	for _, child := range e.childrenOf(el) {
		e.findFrames(child, frameRoles, depth+1, maxDepth, next, out)
	}
}

// findByRoles collects nodes whose role is in the set, bounded by depth.
func (e *Extractor) findByRoles(el platform.Element, roles map[string]bool, depth, maxDepth int, out *[]platform.Element) {
	if depth > maxDepth {
		return
	}
	role, err := e.roleOf(el)
	if err != nil {
		return
	}
	if roles[role] {
		*out = append(*out, el)
	}
	for _, child := range e.childrenOf(el) {
		e.findByRoles(child, roles, depth+1, maxDepth, out)
	}
}

// webElement reads one node's attributes into a WebElement. Individual
// attribute failures leave zero values; only an unreadable role skips a
// node entirely (handled by callers).
func (e *Extractor) webElement(el platform.Element, role, tabID, frameID string, ids *idGen) WebElement {
	we := WebElement{
		Role:        role,
		Title:       e.strAttr(el, platform.AttrTitle),
		Description: e.strAttr(el, platform.AttrDescription),
		Value:       e.strAttr(el, platform.AttrValue),
		URL:         e.strAttr(el, platform.AttrURL),
		Enabled:     true,
		TabID:       tabID,
		FrameID:     frameID,
		ElementID:   ids.next("el"),
	}
	if v, err := e.ax.Attr(el, platform.AttrEnabled); err == nil {
		if b, ok := v.(bool); ok {
			we.Enabled = b
		}
	}
	pos, perr := e.ax.Attr(el, platform.AttrPosition)
	size, serr := e.ax.Attr(el, platform.AttrSize)
	if perr == nil && serr == nil {
		p, pok := pos.(platform.Point)
		s, sok := size.(platform.Size)
		if pok && sok {
			we.Bounds = &platform.Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
		}
	}
	return we
}

func (e *Extractor) roleOf(el platform.Element) (string, error) {
	v, err := e.ax.Attr(el, platform.AttrRole)
	if err != nil {
		return "", err
	}
	role, ok := v.(string)
	if !ok {
		return "", platform.ErrElementUnreachable
	}
	return role, nil
}

func (e *Extractor) childrenOf(el platform.Element) []platform.Element {
	v, err := e.ax.Attr(el, platform.AttrChildren)
	if err != nil {
		return nil
	}
	children, _ := v.([]platform.Element)
	return children
}

// strAttr reads a string-valued attribute, returning "" on any failure.
func (e *Extractor) strAttr(el platform.Element, name string) string {
	v, err := e.ax.Attr(el, name)
	if err != nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return ""
	}
}

// boolAttr reads a bool-valued attribute, returning false on any failure.
func (e *Extractor) boolAttr(el platform.Element, name string) bool {
	v, err := e.ax.Attr(el, name)
	if err != nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

// idGen issues process-local ids per prefix ("tab-1", "frame-1", "el-1").
type idGen struct {
	counts map[string]int
}

func newIDGen() *idGen {
	return &idGen{counts: make(map[string]int)}
}

func (g *idGen) next(prefix string) string {
	g.counts[prefix]++
	return fmt.Sprintf("%s-%d", prefix, g.counts[prefix])
}
