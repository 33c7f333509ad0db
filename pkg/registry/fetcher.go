package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	pkgerrors "github.com/matzehuels/pkgstat/pkg/errors"
	"github.com/matzehuels/pkgstat/pkg/observability"
)

// DefaultUserAgent is sent with every request unless WithUserAgent overrides it.
const DefaultUserAgent = "pkgstat/1.0 (https://github.com/matzehuels/pkgstat)"

// Reporter receives progress lines while a fetch is in flight.
// *terminal.Renderer satisfies it.
type Reporter interface {
	UpdateLine(text string, offset int)
}

// Fetcher resolves package names against a registry and fetches their metadata.
// A Fetcher is safe for concurrent use once constructed.
type Fetcher struct {
	base       *url.URL
	encoder    PathEncoder
	transports map[string]http.RoundTripper
	reporter   Reporter
	logger     *log.Logger
	userAgent  string
	headers    map[string]string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithReporter binds a progress reporter.
func WithReporter(r Reporter) Option {
	return func(f *Fetcher) { f.reporter = r }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithTransports replaces the scheme-to-transport table.
func WithTransports(t map[string]http.RoundTripper) Option {
	return func(f *Fetcher) { f.transports = t }
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithHeaders adds headers to every request. They override the defaults for the
// same key.
func WithHeaders(h map[string]string) Option {
	return func(f *Fetcher) { f.headers = h }
}

// New creates a Fetcher bound to baseURL.
// It fails if baseURL does not parse or its scheme has no transport.
func New(baseURL string, encoder PathEncoder, opts ...Option) (*Fetcher, error) {
	if encoder == nil {
		return nil, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "path encoder is required")
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidInput, err, "invalid registry URL %q", baseURL)
	}

	f := &Fetcher{
		base:       base,
		encoder:    encoder,
		transports: DefaultTransports(),
		logger:     log.New(io.Discard),
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if _, ok := f.transports[base.Scheme]; !ok {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeUnsupported, ErrUnsupportedScheme, "registry URL %q", baseURL)
	}
	return f, nil
}

// BaseURL returns a copy of the registry base address.
func (f *Fetcher) BaseURL() *url.URL {
	u := *f.base
	return &u
}

// Resolve returns the absolute request address for name.
func (f *Fetcher) Resolve(name string) (*url.URL, error) {
	ref, err := url.Parse(f.encoder.Encode(name))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidPackage, err, "encode package name %q", name)
	}
	return f.base.ResolveReference(ref), nil
}

// Fetch retrieves the metadata document for name.
// It performs at most one round trip and never retries.
func (f *Fetcher) Fetch(ctx context.Context, name string) (*Metadata, error) {
	if err := pkgerrors.ValidatePackageName(name); err != nil {
		return nil, err
	}
	target, err := f.Resolve(name)
	if err != nil {
		return nil, err
	}

	rt, ok := f.transports[target.Scheme]
	if !ok {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeTransport, ErrUnsupportedScheme, "GET %s", target)
	}

	if f.reporter != nil {
		// Rewrites the caller's most recent line.
		f.reporter.UpdateLine(fmt.Sprintf("Getting package info of '%s' from registry", name), 1)
	}

	req, err := f.newRequest(ctx, target)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeTransport, err, "GET %s", target)
	}
	requestID := req.Header.Get("X-Request-Id")

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, target.Host, target.Path)
	f.logger.Debug("fetching package metadata", "package", name, "url", target.String(), "request_id", requestID)

	start := time.Now()
	resp, err := rt.RoundTrip(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, target.Host, target.Path, err)
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeTransport, err, "GET %s", target)
	}
	defer resp.Body.Close()

	hooks.OnResponse(ctx, req.Method, target.Host, target.Path, resp.StatusCode, time.Since(start))
	f.logger.Debug("registry responded", "status", resp.StatusCode, "content_type", resp.Header.Get("Content-Type"), "request_id", requestID)

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.Registry(resp.StatusCode, statusText(resp))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		hooks.OnError(ctx, req.Method, target.Host, target.Path, err)
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeTransport, err, "read response from %s", target)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isJSON(contentType) {
		return nil, pkgerrors.New(pkgerrors.ErrCodeFormat, "registry returned incompatible data (content type %q)", contentType)
	}

	meta, err := parseMetadata(body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeFormat, err, "parse response from %s", target)
	}

	f.logger.Debug("parsed package metadata", "package", name, "bytes", len(body))
	return meta, nil
}

func (f *Fetcher) newRequest(ctx context.Context, target *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// statusText returns the reason phrase the server sent, falling back to the
// standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
