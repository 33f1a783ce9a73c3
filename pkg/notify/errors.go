package notify

import "errors"

var (
	// ErrAuthorizationFailed is returned by Authorize when the platform
	// denies permission without supplying an error of its own. It is the
	// only error kind this library defines; all other failures are
	// platform errors forwarded verbatim.
	ErrAuthorizationFailed = errors.New("notify: notification authorization failed")

	// ErrNilCenter is returned by New when no platform center is provided.
	ErrNilCenter = errors.New("notify: platform center is required")

	// ErrMissingIdentifier is returned by Add when the request identifier
	// resolves to an empty string and no generated identifier was allowed.
	ErrMissingIdentifier = errors.New("notify: notification identifier is required")

	// ErrMissingTitle is returned by Add when the title is absent.
	ErrMissingTitle = errors.New("notify: notification title is required")

	// ErrMissingBody is returned by Add when the body is absent.
	ErrMissingBody = errors.New("notify: notification body is required")
)
