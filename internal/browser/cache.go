package browser

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// DefaultCacheTTL is how long an extracted tree is served without a fresh
// accessibility walk.
const DefaultCacheTTL = 30 * time.Second

// TreeCache is a TTL cache of extracted trees keyed by "{app}_{pid}".
// A hit short-circuits the accessibility walk entirely; entries are never
// merged or refreshed in place.
type TreeCache struct {
	mu      sync.Mutex
	entries map[string]*BrowserAccessibilityTree
	ttl     time.Duration
	now     func() time.Time
}

// NewTreeCache creates a cache. A ttl of 0 disables caching.
func NewTreeCache(ttl time.Duration) *TreeCache {
	return &TreeCache{
		entries: make(map[string]*BrowserAccessibilityTree),
		ttl:     ttl,
		now:     time.Now,
	}
}

func treeKey(app string, pid int) string {
	return fmt.Sprintf("%s_%d", app, pid)
}

// Get returns the cached tree for (app, pid) if it is within the TTL,
// else nil. The returned pointer is the cached instance itself.
func (c *TreeCache) Get(app string, pid int) *BrowserAccessibilityTree {
	if c == nil || c.ttl == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	tree, ok := c.entries[treeKey(app, pid)]
	if !ok {
		return nil
	}
	if c.now().Sub(tree.ExtractedAt) >= c.ttl {
		return nil
	}
	return tree
}

// Put stores a freshly extracted tree.
func (c *TreeCache) Put(tree *BrowserAccessibilityTree) {
	if c == nil || c.ttl == 0 || tree == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[treeKey(tree.AppName, tree.PID)] = tree
}

// Clear empties the cache.
func (c *TreeCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*BrowserAccessibilityTree)
}

// Stats reports the cache's size and keys for debugging.
func (c *TreeCache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return CacheStats{Size: len(c.entries), Keys: keys, TTL: c.ttl}
}

// CacheStats describes the tree cache's contents.
type CacheStats struct {
	Size int           `yaml:"size"          json:"size"`
	Keys []string      `yaml:"keys,omitempty" json:"keys,omitempty"`
	TTL  time.Duration `yaml:"ttl"           json:"ttl"`
}
