//go:build !darwin

// On non-darwin platforms this package compiles as an empty no-op so the
// blank import in main builds everywhere; no backends are registered.
package darwin
