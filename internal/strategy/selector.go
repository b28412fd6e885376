package strategy

import (
	"fmt"
	"strings"
	"sync"

	"github.com/axscope/axscope/internal/appkind"
	"go.uber.org/zap"
)

// Selector builds and caches detection strategies per (category, family)
// pair. The cache is unbounded and cleared only explicitly; it is guarded
// by a mutex so the selector is safe for concurrent use.
type Selector struct {
	mu     sync.Mutex
	cache  map[string]*DetectionStrategy
	logger *zap.Logger
}

// NewSelector creates a strategy selector. A nil logger disables logging.
func NewSelector(logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		cache:  make(map[string]*DetectionStrategy),
		logger: logger,
	}
}

func cacheKey(category appkind.Category, family appkind.BrowserFamily) string {
	f := "none"
	if family != appkind.FamilyNone {
		f = family.String()
	}
	return fmt.Sprintf("%s_%s", category, f)
}

// Select returns the strategy for an application. Repeated calls with an
// equal (category, family) pair return the same cached instance; the cached
// strategy is never mutated after its first customization pass.
func (s *Selector) Select(info *appkind.ApplicationInfo) *DetectionStrategy {
	key := cacheKey(info.Category, info.Family)

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.cache[key]; ok {
		return cached
	}

	// Clone before touching anything: the bases are shared singletons.
	st := baseFor(info.Category).Clone()
	if info.Category == appkind.WebBrowser {
		specializeFamily(st, info.Family)
	}
	customize(st, info.Name)

	s.cache[key] = st
	s.logger.Debug("strategy built",
		zap.String("key", key),
		zap.Int("timeout_ms", st.TimeoutMS),
		zap.Float64("fuzzy_threshold", st.FuzzyThreshold))
	return st
}

// Clear empties the strategy cache.
func (s *Selector) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*DetectionStrategy)
}

// CacheStats reports the cache's size and keys for debugging.
func (s *Selector) CacheStats() CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	return CacheStats{Size: len(s.cache), Keys: keys}
}

// CacheStats describes a cache's contents.
type CacheStats struct {
	Size int      `yaml:"size" json:"size"`
	Keys []string `yaml:"keys" json:"keys"`
}

// webContentKeywords widen a browser search to page content when present in
// the command.
var webContentKeywords = []string{"search", "google", "website", "page"}

// Adapt derives per-command search parameters from a strategy. The role
// list is reordered by command intent (click/type/select); browser commands
// mentioning web content narrow the walk to page content and frames.
func Adapt(st *DetectionStrategy, command string) SearchParameters {
	lower := strings.ToLower(command)

	var priority []string
	switch {
	case strings.Contains(lower, "click"):
		priority = []string{"AXButton", "AXLink"}
		if strings.Contains(lower, "link") {
			priority = []string{"AXLink", "AXButton"}
		}
	case strings.Contains(lower, "type"), strings.Contains(lower, "enter"):
		priority = []string{"AXTextField", "AXTextArea"}
	case strings.Contains(lower, "select"):
		priority = []string{"AXPopUpButton", "AXComboBox", "AXList"}
	}

	params := SearchParameters{
		Roles:            reorderRoles(st.PreferredRoles, st.FallbackRoles, priority),
		Attributes:       append([]string(nil), st.Attributes...),
		TimeoutMS:        st.TimeoutMS,
		MaxDepth:         st.MaxDepth,
		FuzzyThreshold:   st.FuzzyThreshold,
		Parallel:         st.ParallelSearch,
		EarlyTermination: st.EarlyTermination,
		SearchFrames:     st.HandleFrames,
		SearchTabs:       st.HandleTabs,
	}

	if st.Category == appkind.WebBrowser {
		for _, kw := range webContentKeywords {
			if strings.Contains(lower, kw) {
				params.WebContentOnly = true
				params.SearchFrames = true
				break
			}
		}
	}

	return params
}

// reorderRoles places priority roles first, then the remaining preferred
// roles, then fallback roles, without duplicates. Priority roles missing
// from the strategy are still included: command intent extends the list.
func reorderRoles(preferred, fallback, priority []string) []string {
	seen := make(map[string]bool, len(preferred)+len(fallback)+len(priority))
	out := make([]string, 0, len(preferred)+len(fallback)+len(priority))
	for _, group := range [][]string{priority, preferred, fallback} {
		for _, r := range group {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}
