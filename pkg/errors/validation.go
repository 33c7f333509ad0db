package errors

import (
	"net/url"
	"strings"
)

// ValidatePackageName rejects empty package names.
// Any other string is accepted; escaping is the path encoder's job.
func ValidatePackageName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}
	return nil
}

// ValidateRegistryURL validates a registry base address.
// It must be absolute and use the http or https scheme.
func ValidateRegistryURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "registry URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid registry URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "registry URL must use http or https scheme")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "registry URL must include a host")
	}

	return nil
}
