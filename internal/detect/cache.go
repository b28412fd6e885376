package detect

import (
	"sort"
	"sync"

	"github.com/axscope/axscope/internal/appkind"
)

// InfoCache is a name-keyed cache of ApplicationInfo snapshots. It has no
// TTL eviction: entries live until Clear is called.
type InfoCache struct {
	mu      sync.Mutex
	entries map[string]*appkind.ApplicationInfo
}

// NewInfoCache creates an empty cache.
func NewInfoCache() *InfoCache {
	return &InfoCache{entries: make(map[string]*appkind.ApplicationInfo)}
}

// Get returns the cached snapshot for an app name, or nil.
func (c *InfoCache) Get(name string) *appkind.ApplicationInfo {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[name]
}

// Put stores a snapshot under its app name.
func (c *InfoCache) Put(info *appkind.ApplicationInfo) {
	if c == nil || info == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[info.Name] = info
}

// Clear empties the cache.
func (c *InfoCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*appkind.ApplicationInfo)
}

// Stats reports the cache's size and keys for debugging.
func (c *InfoCache) Stats() CacheStats {
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
	return CacheStats{Size: len(c.entries), Keys: keys}
}

// CacheStats describes the info cache's contents.
type CacheStats struct {
	Size int      `yaml:"size"           json:"size"`
	Keys []string `yaml:"keys,omitempty" json:"keys,omitempty"`
}
