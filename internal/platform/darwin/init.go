//go:build darwin && cgo

package darwin

import "github.com/axscope/axscope/internal/platform"

func init() {
	platform.CheckPermissionsFunc = CheckAccessibilityPermission
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			AX:      NewAXClient(),
			Apps:    NewAppEnumerator(),
			Scripts: NewScriptRunner(),
		}, nil
	}
}
