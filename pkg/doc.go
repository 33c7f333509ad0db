// Package pkg provides the core libraries for pkgstat.
//
// # Overview
//
// pkgstat fetches package metadata from npm-compatible registries and reports
// progress on a terminal. The pkg directory is organized into these areas:
//
//  1. [registry] - Address resolution, transport dispatch and metadata parsing
//  2. [terminal] - In-place status lines and spinner animation
//  3. [errors] - Coded errors shared by the fetcher and the CLI
//  4. [observability] - Hooks for outgoing HTTP requests
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The typical data flow through pkgstat:
//
//	package name
//	     ↓
//	[registry.PathEncoder] (name → path fragment)
//	     ↓
//	[registry.Fetcher] (resolve, GET, validate, parse) ──→ [terminal.Renderer] (progress)
//	     ↓
//	[registry.Metadata]
//
// # Quick Start
//
// Fetch a package while a spinner runs:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/pkgstat/pkg/registry"
//	    "github.com/matzehuels/pkgstat/pkg/terminal"
//	)
//
//	r := terminal.New(os.Stdout)
//	f, err := registry.New("https://registry.npmjs.org/", registry.NPMEncoder{}, registry.WithReporter(r))
//	if err != nil {
//	    return err
//	}
//
//	sp := r.StartSpinner("", "Fetching left-pad")
//	r.AppendLine("", "")
//	meta, err := f.Fetch(context.Background(), "left-pad")
//	r.StopSpinner(sp, "", "Fetched left-pad")
//
// [registry]: https://pkg.go.dev/github.com/matzehuels/pkgstat/pkg/registry
// [terminal]: https://pkg.go.dev/github.com/matzehuels/pkgstat/pkg/terminal
// [errors]: https://pkg.go.dev/github.com/matzehuels/pkgstat/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pkgstat/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pkgstat/pkg/buildinfo
package pkg
