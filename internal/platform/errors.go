package platform

import "errors"

// Error kinds shared across the detection and extraction core. Callers
// match these with errors.Is; every one of them is recoverable by falling
// back to a lower-confidence strategy or returning no result.
var (
	// ErrCapabilityUnavailable means a platform capability (accessibility,
	// process enumeration) is not present or not permitted.
	ErrCapabilityUnavailable = errors.New("platform capability unavailable")

	// ErrElementUnreachable means a single accessibility query failed.
	// Traversals treat the offending subtree as absent and continue.
	ErrElementUnreachable = errors.New("accessibility element unreachable")

	// ErrProcessNotFound means no running process matches the requested
	// pid or name.
	ErrProcessNotFound = errors.New("process not found")

	// ErrScriptTimeout means an AppleScript subprocess exceeded its timeout.
	ErrScriptTimeout = errors.New("applescript timed out")

	// ErrMalformedResponse means subprocess output did not parse into the
	// expected delimited fields.
	ErrMalformedResponse = errors.New("malformed applescript response")

	// ErrNoApplication means every detection tier was exhausted without a
	// result.
	ErrNoApplication = errors.New("no application detected")
)
