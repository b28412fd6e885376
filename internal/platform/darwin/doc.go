//go:build darwin

// Package darwin provides macOS platform support using the Accessibility
// and AppKit APIs plus osascript. The accessibility client and application
// enumerator require CGo; when CGo is disabled, the package compiles as a
// no-op stub and only the script runner is registered.
package darwin
