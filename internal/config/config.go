// Package config loads runtime tunables from AXSCOPE_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the tunables shared by the CLI and the MCP server.
type Config struct {
	// TreeCacheTTL is how long extracted browser trees are served without
	// a fresh walk (AXSCOPE_TREE_CACHE_TTL).
	TreeCacheTTL time.Duration `envconfig:"TREE_CACHE_TTL" default:"30s"`
	// ScriptTimeout is the hard osascript subprocess timeout
	// (AXSCOPE_SCRIPT_TIMEOUT).
	ScriptTimeout time.Duration `envconfig:"SCRIPT_TIMEOUT" default:"10s"`
	// LogLevel is the zap log level: debug, info, warn, error
	// (AXSCOPE_LOG_LEVEL).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("axscope", &c); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}
