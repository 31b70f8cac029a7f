package pathfinder

import (
	"errors"
	"fmt"
)

// Error kinds raised by the request executor. Every failure out of Execute
// wraps exactly one of these, so callers can classify with errors.Is.
var (
	// ErrSerialize marks a failure to JSON-encode the operation's
	// variables or extensions. The request is never sent.
	ErrSerialize = errors.New("pathfinder: serialize request")

	// ErrRequestBuild marks a malformed URL or a header-enrichment
	// failure. The request is never sent.
	ErrRequestBuild = errors.New("pathfinder: build request")

	// ErrTransport marks a network-level failure or a non-2xx status
	// from the endpoint. No retry is attempted at this layer.
	ErrTransport = errors.New("pathfinder: transport")

	// ErrDecode marks a response body that did not match the expected
	// envelope or operation schema.
	ErrDecode = errors.New("pathfinder: decode response")
)

// wrapErr ties err to one of the sentinel kinds with a context message.
func wrapErr(kind error, msg string, err error) error {
	return fmt.Errorf("%w: %s: %v", kind, msg, err)
}
