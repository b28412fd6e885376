package server

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/axscope/axscope/internal/appkind"
	"github.com/axscope/axscope/internal/browser"
	"github.com/axscope/axscope/internal/detect"
	"github.com/axscope/axscope/internal/strategy"
)

func TestParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"name": "Safari",
		"pid":  float64(42), // JSON numbers arrive as float64
		"bad":  struct{}{},
	}
	if got := stringParam(params, "name", ""); got != "Safari" {
		t.Errorf("stringParam = %q", got)
	}
	if got := stringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("stringParam default = %q", got)
	}
	if got := stringParam(params, "bad", "fallback"); got != "fallback" {
		t.Errorf("stringParam wrong type = %q", got)
	}
	if got := intParam(params, "pid", 0); got != 42 {
		t.Errorf("intParam = %d", got)
	}
	if got := intParam(params, "missing", 7); got != 7 {
		t.Errorf("intParam default = %d", got)
	}
}

func TestClassifyParams(t *testing.T) {
	info := classifyParams(map[string]interface{}{
		"name":      "Google Chrome",
		"bundle_id": "com.google.Chrome",
	})
	if info.Category != appkind.WebBrowser || info.Family != appkind.Chrome {
		t.Errorf("classified as %s/%s", info.Category, info.Family)
	}
	if info.Confidence != 0.95 {
		t.Errorf("confidence = %v", info.Confidence)
	}

	// A missing bundle id degrades to the name-only path.
	info = classifyParams(map[string]interface{}{"name": "Safari"})
	if info.BundleID != appkind.BundleUnknown {
		t.Errorf("bundle id = %q", info.BundleID)
	}
	if info.Confidence != 0.75 {
		t.Errorf("confidence = %v, want the name-only tier", info.Confidence)
	}
}

// newTestServer builds a server with the offline components only. Handlers
// exercised here never touch the platform provider.
func newTestServer() *Server {
	return &Server{
		selector: strategy.NewSelector(zap.NewNop()),
		trees:    browser.NewTreeCache(time.Minute),
		infos:    detect.NewInfoCache(),
		logger:   zap.NewNop(),
	}
}

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func TestHandleClassifyApp(t *testing.T) {
	s := newTestServer()

	result, err := s.handleClassifyApp(context.Background(), toolRequest("classify_app", map[string]interface{}{
		"name":      "Google Chrome",
		"bundle_id": "com.google.Chrome",
	}))
	if err != nil {
		t.Fatalf("handleClassifyApp: %v", err)
	}
	if result.IsError {
		t.Fatalf("IsError = true: %s", resultText(t, result))
	}
	text := resultText(t, result)
	if !strings.Contains(text, "web_browser") || !strings.Contains(text, "chrome") {
		t.Errorf("result missing classification: %s", text)
	}
}

func TestHandleClassifyAppRequiresName(t *testing.T) {
	s := newTestServer()

	result, err := s.handleClassifyApp(context.Background(), toolRequest("classify_app", nil))
	if err != nil {
		t.Fatalf("handleClassifyApp: %v", err)
	}
	if !result.IsError {
		t.Error("IsError = false for a missing name")
	}
}

func TestHandleDetectionStrategy(t *testing.T) {
	s := newTestServer()

	result, err := s.handleDetectionStrategy(context.Background(), toolRequest("detection_strategy", map[string]interface{}{
		"name":      "Safari",
		"bundle_id": "com.apple.Safari",
	}))
	if err != nil {
		t.Fatalf("handleDetectionStrategy: %v", err)
	}
	if result.IsError {
		t.Fatalf("IsError = true: %s", resultText(t, result))
	}
	text := resultText(t, result)
	if !strings.Contains(text, "AXWebArea") {
		t.Errorf("strategy for Safari lacks web roles: %s", text)
	}
}

func TestHandleSearchParams(t *testing.T) {
	s := newTestServer()

	result, err := s.handleSearchParams(context.Background(), toolRequest("search_params", map[string]interface{}{
		"name":      "Google Chrome",
		"bundle_id": "com.google.Chrome",
		"command":   "click the submit button",
	}))
	if err != nil {
		t.Fatalf("handleSearchParams: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "AXButton") {
		t.Errorf("click command did not prioritize buttons: %s", text)
	}
}

func TestHandleCacheStatsAndClear(t *testing.T) {
	s := newTestServer()
	s.selector.Select(&appkind.ApplicationInfo{
		Name: "Safari", Category: appkind.WebBrowser, Family: appkind.Safari,
	})

	result, err := s.handleCacheStats(context.Background(), toolRequest("cache_stats", nil))
	if err != nil {
		t.Fatalf("handleCacheStats: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "strategies") {
		t.Errorf("stats missing strategies section: %s", text)
	}

	if _, err := s.handleCacheClear(context.Background(), toolRequest("cache_clear", nil)); err != nil {
		t.Fatalf("handleCacheClear: %v", err)
	}
	if s.selector.CacheStats().Size != 0 {
		t.Error("strategy cache not cleared")
	}
}
