package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/axscope/axscope/internal/appkind"
	"github.com/axscope/axscope/internal/detect"
	"github.com/axscope/axscope/internal/platform"
)

// resolveTarget returns the ApplicationInfo a tree command should operate
// on. An explicit --app or --pid selects a running application directly;
// otherwise the full detection pipeline runs.
func resolveTarget(ctx context.Context, p *platform.Provider, appName string, pid int) (*appkind.ApplicationInfo, error) {
	if appName == "" && pid == 0 {
		resolver := detect.NewResolver(p, detect.NewInfoCache(), logger)
		resolver.SetScriptTimeout(appConfig.ScriptTimeout)
		return resolver.Resolve(ctx)
	}

	apps, err := p.Apps.RunningApps()
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
			AXEnabled:  p.AX != nil && p.AX.Trusted(),
			Confidence: confidence,
		}, nil
	}
	return nil, fmt.Errorf("no running application matches app=%q pid=%d", appName, pid)
}

// permissionHint rewrites capability failures into the OS remediation
// message when one is available.
func permissionHint(err error) error {
	if errors.Is(err, platform.ErrCapabilityUnavailable) && platform.CheckPermissionsFunc != nil {
		if permErr := platform.CheckPermissionsFunc(); permErr != nil {
			return permErr
		}
	}
	return err
}
