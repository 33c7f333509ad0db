// Package registry fetches package metadata from an HTTP package registry.
//
// # Overview
//
// A [Fetcher] is bound to a registry base address and a [PathEncoder]. Each call to
// [Fetcher.Fetch] encodes the package name, resolves it against the base address,
// performs exactly one GET and parses the JSON document the registry returns:
//
//	f, err := registry.New("https://registry.npmjs.org/", registry.NPMEncoder{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	meta, err := f.Fetch(ctx, "@types/node")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(meta.Name(), meta.LatestVersion())
//
// # Address Resolution
//
// The encoded fragment is resolved with standard reference resolution: a relative
// fragment replaces the last path segment of the base, and the base query and
// fragment are dropped. Use a trailing slash on the base address to keep its path.
//
// # Transports
//
// The transport is picked from a static table keyed by URL scheme. The default table
// serves "http" and "https"; [WithTransports] replaces it. Transports are invoked
// directly, so redirects are not followed and there are no retries.
//
// # Errors
//
// Failures carry one of three codes from [github.com/matzehuels/pkgstat/pkg/errors]:
//
//   - TRANSPORT_ERROR: the connection failed on the request or while reading the body
//   - REGISTRY_ERROR: the status was not 200; the message is the server's status text
//   - FORMAT_ERROR: the content type is not JSON or the body does not parse
package registry
