//go:build darwin

package darwin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/axscope/axscope/internal/platform"
)

// ScriptRunner executes AppleScript via osascript. The timeout is enforced
// on the subprocess itself: osascript offers no cancellation primitive, so
// the process is killed when the deadline fires.
type ScriptRunner struct{}

// NewScriptRunner creates an osascript runner.
func NewScriptRunner() *ScriptRunner {
	return &ScriptRunner{}
}

// Run executes the script and returns its trimmed stdout.
func (r *ScriptRunner) Run(ctx context.Context, script string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", platform.ErrScriptTimeout
	}
	if err != nil {
		return "", fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}
