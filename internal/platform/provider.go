package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform capabilities for the current OS.
// Any field may be nil when that capability is unavailable; consumers must
// degrade per the error taxonomy rather than assume presence.
type Provider struct {
	AX      AXClient
	Apps    AppEnumerator
	Scripts ScriptRunner
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("axscope is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// CheckPermissionsFunc, when set, reports whether the process holds the OS
// permission needed for accessibility reads, with remediation instructions.
var CheckPermissionsFunc func() error

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
