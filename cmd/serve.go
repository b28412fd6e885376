package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/axscope/axscope/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing detection and extraction tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes application
detection, classification, strategy selection, and browser tree
extraction as tools.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  axscope serve
  axscope serve --transport streamable-http --port 8080
  axscope serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", -1, "Tree cache TTL in milliseconds (-1 = AXSCOPE_TREE_CACHE_TTL, 0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cacheTTL := appConfig.TreeCacheTTL
	if cacheTTLMs >= 0 {
		cacheTTL = time.Duration(cacheTTLMs) * time.Millisecond
	}

	cfg := server.Config{
		Transport:     transport,
		Port:          port,
		CacheTTL:      cacheTTL,
		ScriptTimeout: appConfig.ScriptTimeout,
		Logger:        logger,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return srv.Serve(cfg)
}
