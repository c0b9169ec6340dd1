package emag

import "errors"

// Sentinel errors returned by the eMAG client. Callers match them with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrAuth means no credential could be obtained or upstream rejected it.
	ErrAuth = errors.New("emag: authentication failed")

	// ErrTransport means the request never produced a readable response.
	ErrTransport = errors.New("emag: transport failure")

	// ErrUpstream means upstream answered, but not with a usable envelope.
	ErrUpstream = errors.New("emag: upstream error")
)
