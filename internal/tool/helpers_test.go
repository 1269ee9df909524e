package tool

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// recorded captures the last request seen by the test server.
type recorded struct {
	count  atomic.Int64
	method string
	path   string
	query  url.Values
	body   map[string]any
}

// newTestClient starts an httptest server that records requests and answers
// with the given body, and returns a client pointed at it.
func newTestClient(t *testing.T, respBody string) (*teamviewer.Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.count.Add(1)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.body = nil
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			json.Unmarshal(raw, &rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return teamviewer.New("test-token", teamviewer.WithBaseURL(srv.URL)), rec
}

// findTool returns the named tool from a slice or fails the test.
func findTool(t *testing.T, tools []Tool, name string) Tool {
	t.Helper()
	for _, tl := range tools {
		if tl.Name == name {
			return tl
		}
	}
	t.Fatalf("tool %q not found", name)
	return Tool{}
}
