// Package server exposes application detection and browser tree extraction
// as MCP tools over stdio or streamable HTTP.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/axscope/axscope/internal/browser"
	"github.com/axscope/axscope/internal/detect"
	"github.com/axscope/axscope/internal/platform"
	"github.com/axscope/axscope/internal/strategy"
	"github.com/axscope/axscope/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport     string
	Port          int
	CacheTTL      time.Duration
	ScriptTimeout time.Duration
	Logger        *zap.Logger
}

// Server wraps the MCP server with the platform provider, detection
// pipeline, and caches. providerMu serializes all accessibility traffic:
// the macOS AX API is not safe for concurrent use from one process.
type Server struct {
	provider   *platform.Provider
	resolver   *detect.Resolver
	selector   *strategy.Selector
	extractor  *browser.Extractor
	trees      *browser.TreeCache
	infos      *detect.InfoCache
	logger     *zap.Logger
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// New creates and configures an MCP server with all detection tools.
func New(cfg Config) (*Server, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		provider: provider,
		trees:    browser.NewTreeCache(cfg.CacheTTL),
		infos:    detect.NewInfoCache(),
		selector: strategy.NewSelector(logger),
		logger:   logger,
	}
	s.resolver = detect.NewResolver(provider, s.infos, logger)
	if cfg.ScriptTimeout > 0 {
		s.resolver.SetScriptTimeout(cfg.ScriptTimeout)
	}
	s.extractor = browser.NewExtractor(provider.AX, s.trees, logger)

	s.mcp = mcpserver.NewMCPServer(
		"axscope",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// detect_app
	s.mcp.AddTool(
		mcp.NewTool("detect_app",
			mcp.WithDescription("Detect the active user-facing application: name, bundle ID, PID, category, browser family, and detection confidence"),
		),
		s.handleDetectApp,
	)

	// classify_app
	s.mcp.AddTool(
		mcp.NewTool("classify_app",
			mcp.WithDescription("Classify an application by name and bundle ID without touching the running system"),
			mcp.WithString("name", mcp.Description("Application name (e.g. 'Google Chrome')"), mcp.Required()),
			mcp.WithString("bundle_id", mcp.Description("Bundle identifier (e.g. 'com.google.Chrome'), or 'unknown'")),
		),
		s.handleClassifyApp,
	)

	// detection_strategy
	s.mcp.AddTool(
		mcp.NewTool("detection_strategy",
			mcp.WithDescription("Return the element detection strategy (roles, attributes, timeouts, depth) for an application"),
			mcp.WithString("name", mcp.Description("Application name")),
			mcp.WithString("bundle_id", mcp.Description("Bundle identifier")),
		),
		s.handleDetectionStrategy,
	)

	// search_params
	s.mcp.AddTool(
		mcp.NewTool("search_params",
			mcp.WithDescription("Return search parameters for a strategy, adapted to a natural-language command (click, type, select)"),
			mcp.WithString("name", mcp.Description("Application name")),
			mcp.WithString("bundle_id", mcp.Description("Bundle identifier")),
			mcp.WithString("command", mcp.Description("Command text to adapt role priorities to")),
		),
		s.handleSearchParams,
	)

	// extract_tree
	s.mcp.AddTool(
		mcp.NewTool("extract_tree",
			mcp.WithDescription("Extract the accessibility tree from a running browser: tabs, frames, and web content elements"),
			mcp.WithString("app", mcp.Description("Application name (default: detect the active app)")),
			mcp.WithNumber("pid", mcp.Description("Target by process ID")),
			mcp.WithString("find", mcp.Description("Fuzzy-match elements against this query instead of returning the full tree")),
		),
		s.handleExtractTree,
	)

	// list_tabs
	s.mcp.AddTool(
		mcp.NewTool("list_tabs",
			mcp.WithDescription("List browser tabs ranked by extracted content volume"),
			mcp.WithString("app", mcp.Description("Application name (default: detect the active app)")),
			mcp.WithNumber("pid", mcp.Description("Target by process ID")),
		),
		s.handleListTabs,
	)

	// cache_stats
	s.mcp.AddTool(
		mcp.NewTool("cache_stats",
			mcp.WithDescription("Report tree, detection, and strategy cache statistics"),
		),
		s.handleCacheStats,
	)

	// cache_clear
	s.mcp.AddTool(
		mcp.NewTool("cache_clear",
			mcp.WithDescription("Clear the tree, detection, and strategy caches"),
		),
		s.handleCacheClear,
	)
}
