//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#include <stdlib.h>
#include <string.h>
#import <AppKit/AppKit.h>

typedef struct {
	char *name;
	char *bundleID;
	int pid;
	int hidden;
	int active;
	int policy;
} RunningAppInfo;

static void fill_app_info(NSRunningApplication *app, RunningAppInfo *out) {
	const char *name = app.localizedName ? app.localizedName.UTF8String : "";
	const char *bundle = app.bundleIdentifier ? app.bundleIdentifier.UTF8String : "";
	out->name = strdup(name);
	out->bundleID = strdup(bundle);
	out->pid = (int)app.processIdentifier;
	out->hidden = app.hidden ? 1 : 0;
	out->active = app.active ? 1 : 0;
	out->policy = (int)app.activationPolicy;
}

static int frontmost_app(RunningAppInfo *out) {
	@autoreleasepool {
		NSRunningApplication *app = [NSWorkspace sharedWorkspace].frontmostApplication;
		if (app == nil) return -1;
		fill_app_info(app, out);
		return 0;
	}
}

static int list_running_apps(RunningAppInfo **outApps, int *outCount) {
	@autoreleasepool {
		NSArray<NSRunningApplication *> *apps = [NSWorkspace sharedWorkspace].runningApplications;
		int n = (int)apps.count;
		RunningAppInfo *infos = calloc(n > 0 ? n : 1, sizeof(RunningAppInfo));
		if (infos == NULL) return -1;
		for (int i = 0; i < n; i++) {
			fill_app_info(apps[i], &infos[i]);
		}
		*outApps = infos;
		*outCount = n;
		return 0;
	}
}

static void free_app_info(RunningAppInfo *info) {
	free(info->name);
	free(info->bundleID);
}

static void free_app_infos(RunningAppInfo *apps, int count) {
	for (int i = 0; i < count; i++) {
		free_app_info(&apps[i]);
	}
	free(apps);
}
*/
import "C"
import (
	"unsafe"

	"github.com/axscope/axscope/internal/platform"
)

// AppEnumerator implements platform.AppEnumerator over NSWorkspace.
type AppEnumerator struct{}

// NewAppEnumerator creates a macOS application enumerator.
func NewAppEnumerator() *AppEnumerator {
	return &AppEnumerator{}
}

func goApp(info *C.RunningAppInfo) platform.RunningApp {
	return platform.RunningApp{
		Name:     C.GoString(info.name),
		BundleID: C.GoString(info.bundleID),
		PID:      int(info.pid),
		Hidden:   info.hidden != 0,
		Active:   info.active != 0,
		Policy:   int(info.policy),
	}
}

// FrontmostApp returns the currently frontmost application.
func (e *AppEnumerator) FrontmostApp() (platform.RunningApp, error) {
	var info C.RunningAppInfo
	if C.frontmost_app(&info) != 0 {
		return platform.RunningApp{}, platform.ErrCapabilityUnavailable
	}
	app := goApp(&info)
	C.free_app_info(&info)
	return app, nil
}

// RunningApps returns all running applications in OS enumeration order.
func (e *AppEnumerator) RunningApps() ([]platform.RunningApp, error) {
	var cApps *C.RunningAppInfo
	var cCount C.int
	if C.list_running_apps(&cApps, &cCount) != 0 {
		return nil, platform.ErrCapabilityUnavailable
	}
	defer C.free_app_infos(cApps, cCount)

	n := int(cCount)
	apps := make([]platform.RunningApp, 0, n)
	if n > 0 {
		cSlice := unsafe.Slice(cApps, n)
		for i := 0; i < n; i++ {
			apps = append(apps, goApp(&cSlice[i]))
		}
	}
	return apps, nil
}
