package registrytest

import (
	"io"
	"net/http"
	"testing"
)

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestServerResponses(t *testing.T) {
	srv := NewServer(t, map[string]Response{
		"/foo":          JSON(`{"name":"foo"}`),
		"/@scope%2Fpkg": {Status: http.StatusGone, ContentType: "text/plain", Body: "gone"},
		"/no-type":      {Body: `{"name":"x"}`},
	})

	resp, body := get(t, srv.URL+"/foo")
	if resp.StatusCode != http.StatusOK || body != `{"name":"foo"}` {
		t.Errorf("/foo = %d %q", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("/foo Content-Type = %q", ct)
	}

	resp, _ = get(t, srv.URL+"/@scope%2Fpkg")
	if resp.StatusCode != http.StatusGone {
		t.Errorf("scoped status = %d, want %d", resp.StatusCode, http.StatusGone)
	}

	resp, _ = get(t, srv.URL+"/no-type")
	if _, ok := resp.Header["Content-Type"]; ok {
		t.Errorf("/no-type Content-Type = %q, want none", resp.Header.Get("Content-Type"))
	}

	resp, _ = get(t, srv.URL+"/missing")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("/missing status = %d, want 404", resp.StatusCode)
	}
}

func TestServerRecordsRequests(t *testing.T) {
	srv := NewServer(t, nil)
	srv.Set("/late", JSON(`{}`))

	get(t, srv.URL+"/late")
	get(t, srv.URL+"/@a%2Fb")

	reqs := srv.Requests()
	if len(reqs) != 2 {
		t.Fatalf("Requests() = %d, want 2", len(reqs))
	}
	if reqs[0].Path != "/late" || reqs[1].RequestURI != "/@a%2Fb" {
		t.Errorf("Requests() = %+v", reqs)
	}
	if reqs[0].Method != http.MethodGet {
		t.Errorf("Method = %q, want GET", reqs[0].Method)
	}
}
