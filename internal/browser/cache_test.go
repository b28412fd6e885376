package browser

import (
	"testing"
	"time"
)

func TestTreeCacheHitReturnsSameInstance(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewTreeCache(30 * time.Second)
	c.now = func() time.Time { return base }

	tree := &BrowserAccessibilityTree{AppName: "Safari", PID: 100, ExtractedAt: base}
	c.Put(tree)

	if got := c.Get("Safari", 100); got != tree {
		t.Error("cache hit did not return the stored instance")
	}
	if got := c.Get("Safari", 101); got != nil {
		t.Errorf("different pid hit the cache: %+v", got)
	}
	if got := c.Get("Chrome", 100); got != nil {
		t.Errorf("different app hit the cache: %+v", got)
	}
}

func TestTreeCacheExpiry(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c := NewTreeCache(30 * time.Second)
	c.now = func() time.Time { return now }

	c.Put(&BrowserAccessibilityTree{AppName: "Safari", PID: 100, ExtractedAt: base})

	now = base.Add(29 * time.Second)
	if c.Get("Safari", 100) == nil {
		t.Error("entry expired before the TTL")
	}

	now = base.Add(30 * time.Second)
	if c.Get("Safari", 100) != nil {
		t.Error("entry survived the TTL boundary")
	}
}

func TestTreeCacheDisabled(t *testing.T) {
	c := NewTreeCache(0)
	c.Put(&BrowserAccessibilityTree{AppName: "Safari", PID: 100, ExtractedAt: time.Now()})
	if c.Get("Safari", 100) != nil {
		t.Error("zero TTL cache served an entry")
	}

	var nilCache *TreeCache
	if nilCache.Get("Safari", 100) != nil {
		t.Error("nil cache served an entry")
	}
	nilCache.Put(&BrowserAccessibilityTree{})
	nilCache.Clear()
}

func TestTreeCacheClearAndStats(t *testing.T) {
	now := time.Now()
	c := NewTreeCache(time.Minute)
	c.Put(&BrowserAccessibilityTree{AppName: "Safari", PID: 100, ExtractedAt: now})
	c.Put(&BrowserAccessibilityTree{AppName: "Chrome", PID: 200, ExtractedAt: now})

	stats := c.Stats()
	if stats.Size != 2 {
		t.Errorf("size = %d, want 2", stats.Size)
	}
	if len(stats.Keys) != 2 || stats.Keys[0] != "Chrome_200" || stats.Keys[1] != "Safari_100" {
		t.Errorf("keys = %v", stats.Keys)
	}
	if stats.TTL != time.Minute {
		t.Errorf("ttl = %v", stats.TTL)
	}

	c.Clear()
	if c.Stats().Size != 0 {
		t.Error("cache not empty after Clear")
	}
}
