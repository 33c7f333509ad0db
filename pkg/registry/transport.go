package registry

import (
	"crypto/tls"
	"errors"
	"net/http"
)

// ErrUnsupportedScheme is returned when no transport is registered for a URL scheme.
var ErrUnsupportedScheme = errors.New("unsupported scheme")

// DefaultTransports returns the scheme table used when no WithTransports option
// is given. Keep-alives are disabled: every fetch opens its own connection.
func DefaultTransports() map[string]http.RoundTripper {
	return map[string]http.RoundTripper{
		"http": &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
		},
		"https": &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}
