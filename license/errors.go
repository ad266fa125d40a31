package license

import "errors"

// Parse failures returned by FromURL. Callers check with errors.Is;
// the concrete error may carry extra context around the sentinel.
var (
	// ErrInvalidURL means the input is not syntactically a URL.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrUnsupportedHost means the URL is well-formed but does not point
	// at creativecommons.org.
	ErrUnsupportedHost = errors.New("unsupported host")

	// ErrUnrecognizedPath means the first path segment is neither
	// "licenses" nor "publicdomain".
	ErrUnrecognizedPath = errors.New("unrecognized path")

	// ErrUnknownLicenseCode means the code token is not a known CC
	// permission combination.
	ErrUnknownLicenseCode = errors.New("unknown license code")

	// ErrInvalidVersion means the version segment is not in major.minor form.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrMalformedPath means the path matched a known branch but is missing
	// required segments or carries extra ones.
	ErrMalformedPath = errors.New("malformed path")

	// ErrInvalidZeroVersion means a publicdomain/zero URL carries a version
	// other than 1.0. CC0 only ever shipped as 1.0.
	ErrInvalidZeroVersion = errors.New("the version of CC0 dedications must be 1.0")
)
