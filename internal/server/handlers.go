package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/axscope/axscope/internal/appkind"
	"github.com/axscope/axscope/internal/browser"
	"github.com/axscope/axscope/internal/detect"
	"github.com/axscope/axscope/internal/strategy"
)

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return def
}

func toYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

// classifyParams builds an ApplicationInfo from explicit name/bundle_id
// tool arguments without touching the running system.
func classifyParams(params map[string]interface{}) *appkind.ApplicationInfo {
	name := stringParam(params, "name", "")
	bundleID := stringParam(params, "bundle_id", "")
	if bundleID == "" {
		bundleID = appkind.BundleUnknown
	}
	category, family, confidence := appkind.Classify(name, bundleID)
	return &appkind.ApplicationInfo{
		Name:       name,
		BundleID:   bundleID,
		Category:   category,
		Family:     family,
		Confidence: confidence,
	}
}

// targetInfo resolves the application a tree tool should operate on.
// Explicit app/pid arguments select a running application directly;
// otherwise the full detection pipeline runs. Caller holds providerMu.
func (s *Server) targetInfo(ctx context.Context, params map[string]interface{}) (*appkind.ApplicationInfo, error) {
	appName := stringParam(params, "app", "")
	pid := intParam(params, "pid", 0)
	if appName == "" && pid == 0 {
		return s.resolver.Resolve(ctx)
	}

	apps, err := s.provider.Apps.RunningApps()
	if err != nil {
		return nil, err
	}
	for _, a := range apps {
		if pid != 0 && a.PID != pid {
			continue
		}
		if appName != "" && !strings.EqualFold(a.Name, appName) {
			continue
		}
		category, family, confidence := appkind.Classify(a.Name, a.BundleID)
		bundleID := a.BundleID
		if bundleID == "" {
			bundleID = appkind.BundleUnknown
		}
		return &appkind.ApplicationInfo{
			Name:       a.Name,
			BundleID:   bundleID,
			PID:        a.PID,
			Category:   category,
			Family:     family,
			AXEnabled:  s.provider.AX != nil && s.provider.AX.Trusted(),
			Confidence: confidence,
		}, nil
	}
	return nil, fmt.Errorf("no running application matches app=%q pid=%d", appName, pid)
}

func (s *Server) handleDetectApp(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	info, err := s.resolver.Resolve(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toYAML(info)), nil
}

func (s *Server) handleClassifyApp(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := classifyParams(request.GetArguments())
	if info.Name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	return mcp.NewToolResultText(toYAML(info)), nil
}

func (s *Server) handleDetectionStrategy(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := classifyParams(request.GetArguments())
	st := s.selector.Select(info)
	return mcp.NewToolResultText(toYAML(st)), nil
}

func (s *Server) handleSearchParams(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	info := classifyParams(params)
	st := s.selector.Select(info)
	sp := strategy.Adapt(st, stringParam(params, "command", ""))
	return mcp.NewToolResultText(toYAML(sp)), nil
}

func (s *Server) handleExtractTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	info, err := s.targetInfo(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tree, err := s.extractor.Extract(info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if query := stringParam(params, "find", ""); query != "" {
		st := s.selector.Select(info)
		matches := browser.FindElements(tree, query, strategy.Adapt(st, query))
		return mcp.NewToolResultText(toYAML(matches)), nil
	}
	return mcp.NewToolResultText(toYAML(tree)), nil
}

func (s *Server) handleListTabs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	info, err := s.targetInfo(ctx, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tree, err := s.extractor.Extract(info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toYAML(browser.RankTabsByContent(tree))), nil
}

func (s *Server) handleCacheStats(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	stats := struct {
		Trees      browser.CacheStats  `yaml:"trees"`
		Detections detect.CacheStats   `yaml:"detections"`
		Strategies strategy.CacheStats `yaml:"strategies"`
	}{
		Trees:      s.trees.Stats(),
		Detections: s.infos.Stats(),
		Strategies: s.selector.CacheStats(),
	}
	return mcp.NewToolResultText(toYAML(stats)), nil
}

func (s *Server) handleCacheClear(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	s.trees.Clear()
	s.infos.Clear()
	s.selector.Clear()
	return mcp.NewToolResultText("cleared: trees, detections, strategies\n"), nil
}
