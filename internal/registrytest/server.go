// Package registrytest provides an in-process package registry for tests.
package registrytest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Response is a canned reply for one package path.
type Response struct {
	Status      int    // defaults to 200
	ContentType string // sent verbatim; empty omits the header
	Body        string
}

// JSON returns a 200 response with a JSON content type.
func JSON(body string) Response {
	return Response{Status: http.StatusOK, ContentType: "application/json", Body: body}
}

// Request is what the server recorded about one incoming request.
type Request struct {
	Method     string
	RequestURI string
	Path       string
	Header     http.Header
}

// Server is a fake registry. Unknown paths answer 404 with a text body.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []Request
}

// NewServer starts a registry serving responses keyed by escaped request path
// (for example "/@scope%2Fname"). The server is closed when the test ends.
func NewServer(t testing.TB, responses map[string]Response) *Server {
	s := &Server{responses: make(map[string]Response, len(responses))}
	for k, v := range responses {
		s.responses[k] = v
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Get("/*", s.serve)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Set adds or replaces the response for path.
func (s *Server) Set(path string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = resp
}

// Requests returns a copy of the recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:     r.Method,
			RequestURI: r.RequestURI,
			Path:       r.URL.EscapedPath(),
			Header:     r.Header.Clone(),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp, ok := s.responses[r.URL.EscapedPath()]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	} else {
		// Suppress content sniffing.
		w.Header()["Content-Type"] = nil
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	w.Write([]byte(resp.Body))
}
