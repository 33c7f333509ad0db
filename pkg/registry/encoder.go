package registry

import (
	"net/url"
	"strings"
)

// PathEncoder turns a package name into a path fragment relative to the
// registry base address. Implementations must be pure.
type PathEncoder interface {
	Encode(name string) string
}

// PathEncoderFunc adapts a function to PathEncoder.
type PathEncoderFunc func(name string) string

// Encode calls f(name).
func (f PathEncoderFunc) Encode(name string) string { return f(name) }

// NPMEncoder encodes names the way npm-compatible registries expect them:
// the whole name is one path segment, so the slash of a scoped name is escaped
// ("@babel/core" becomes "@babel%2Fcore").
type NPMEncoder struct{}

// Encode escapes name as a single path segment.
func (NPMEncoder) Encode(name string) string {
	escaped := url.PathEscape(name)
	// PathEscape keeps colons, which would otherwise parse as a URL scheme.
	if strings.Contains(escaped, ":") {
		return "./" + escaped
	}
	return escaped
}
