// Package license resolves Creative Commons license URLs into typed License
// values and renders their canonical human-readable forms.
//
// The grammar is a finite lookup over the known CC URL shapes: the set of
// legitimate license paths is small and closed, so a table-driven match keeps
// parsing O(1) and adding a new combination is a table row. Parsing is pure
// and synchronous; a License is only ever built after the whole URL has been
// validated, so no partially-valid value can escape.
package license

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// licenseHost is the only host CC publishes license deeds on.
const licenseHost = "creativecommons.org"

// versionRE matches the simple major.minor tokens CC uses ("4.0", "2.5").
var versionRE = regexp.MustCompile(`^\d+\.\d+$`)

// License is a validated Creative Commons license reference.
// Values are immutable after construction and safe for concurrent use;
// two Licenses parsed from equivalent URLs compare equal with ==.
type License struct {
	kind         Kind
	version      string
	jurisdiction string // lowercase slug, empty for unported licenses
}

// FromURL parses a Creative Commons license URL.
//
// Recognized shapes:
//
//	https://creativecommons.org/licenses/<code>/<version>/
//	https://creativecommons.org/licenses/<code>/<version>/<jurisdiction>/
//	https://creativecommons.org/publicdomain/zero/1.0/
//
// The scheme must be http or https, the host creativecommons.org (an
// optional "www." and any casing are tolerated), and a trailing slash is
// always equivalent to its absence. Failures are reported through the
// package's sentinel errors.
func FromURL(rawURL string) (License, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return License{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return License{}, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host != licenseHost {
		return License{}, fmt.Errorf("%w: %q", ErrUnsupportedHost, u.Hostname())
	}

	segments := splitPath(u.Path)
	if len(segments) == 0 {
		return License{}, fmt.Errorf("%w: empty path", ErrUnrecognizedPath)
	}

	switch segments[0] {
	case "publicdomain":
		return parseZero(segments)
	case "licenses":
		return parseLicense(segments)
	default:
		return License{}, fmt.Errorf("%w: %q", ErrUnrecognizedPath, segments[0])
	}
}

// parseZero handles the publicdomain/zero/<version> branch.
func parseZero(segments []string) (License, error) {
	if len(segments) < 3 || segments[1] != "zero" {
		return License{}, fmt.Errorf("%w: want publicdomain/zero/<version>", ErrMalformedPath)
	}
	if len(segments) > 3 {
		return License{}, fmt.Errorf("%w: unexpected segment %q", ErrMalformedPath, segments[3])
	}

	version := segments[2]
	if !versionRE.MatchString(version) {
		return License{}, fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	if version != "1.0" {
		return License{}, fmt.Errorf("%w: got %q", ErrInvalidZeroVersion, version)
	}

	return License{kind: Zero, version: version}, nil
}

// parseLicense handles the licenses/<code>/<version>[/<jurisdiction>] branch.
func parseLicense(segments []string) (License, error) {
	if len(segments) < 3 {
		return License{}, fmt.Errorf("%w: want licenses/<code>/<version>", ErrMalformedPath)
	}
	if len(segments) > 4 {
		return License{}, fmt.Errorf("%w: unexpected segment %q", ErrMalformedPath, segments[4])
	}

	kind, ok := kindByCode[segments[1]]
	if !ok {
		return License{}, fmt.Errorf("%w: %q", ErrUnknownLicenseCode, segments[1])
	}

	version := segments[2]
	if !versionRE.MatchString(version) {
		return License{}, fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}

	l := License{kind: kind, version: version}
	if len(segments) == 4 {
		// No whitelist: any syntactically valid slug is stored verbatim.
		l.jurisdiction = strings.ToLower(segments[3])
	}
	return l, nil
}

// splitPath splits a URL path into its non-empty segments. Dropping empty
// segments makes a trailing slash (and a stray double slash) equivalent to
// its absence.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Kind returns the license's permission combination.
func (l License) Kind() Kind {
	return l.kind
}

// Rights returns the abbreviated rights string, e.g. "CC BY-NC-SA".
func (l License) Rights() string {
	return l.kind.Abbr()
}

// RightsFull returns the full rights phrase,
// e.g. "Attribution-NonCommercial-ShareAlike".
func (l License) RightsFull() string {
	return l.kind.FullText()
}

// Version returns the version token exactly as it appeared in the URL.
func (l License) Version() string {
	return l.version
}

// Jurisdiction returns the lowercase jurisdiction slug of a ported license,
// or the empty string when the license is not ported.
func (l License) Jurisdiction() string {
	return l.jurisdiction
}

// Short returns the compact citation form, e.g. "CC BY-NC 4.0".
// The jurisdiction is omitted even when present.
func (l License) Short() string {
	return l.kind.Abbr() + " " + l.version
}

// String returns the full descriptive sentence, e.g.
// "Creative Commons Attribution-NonCommercial-ShareAlike 4.0 International
// license (CC BY-NC-SA 4.0).".
func (l License) String() string {
	return fmt.Sprintf("Creative Commons %s %s %s license (%s).",
		l.RightsFull(), l.version, l.region(), l.Short())
}

// region picks the word between version and "license" in the descriptive
// sentence: the capitalized jurisdiction for ported licenses, otherwise the
// nomenclature CC used for that version generation.
func (l License) region() string {
	if l.kind == Zero {
		return "Universal"
	}
	if l.jurisdiction != "" {
		return capitalize(l.jurisdiction)
	}
	switch l.version {
	case "4.0":
		return "International"
	case "3.0":
		return "Unported"
	default:
		return "Generic"
	}
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
