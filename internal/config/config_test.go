package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TreeCacheTTL != 30*time.Second {
		t.Errorf("TreeCacheTTL = %v, want 30s", cfg.TreeCacheTTL)
	}
	if cfg.ScriptTimeout != 10*time.Second {
		t.Errorf("ScriptTimeout = %v, want 10s", cfg.ScriptTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AXSCOPE_TREE_CACHE_TTL", "5s")
	t.Setenv("AXSCOPE_SCRIPT_TIMEOUT", "2s")
	t.Setenv("AXSCOPE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TreeCacheTTL != 5*time.Second {
		t.Errorf("TreeCacheTTL = %v, want 5s", cfg.TreeCacheTTL)
	}
	if cfg.ScriptTimeout != 2*time.Second {
		t.Errorf("ScriptTimeout = %v, want 2s", cfg.ScriptTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("AXSCOPE_TREE_CACHE_TTL", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Error("Load accepted an unparseable duration")
	}
}
