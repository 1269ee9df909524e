package tool

import (
	"context"
	"net/http"
	"testing"
)

func TestReportTools_QueryParameterRenames(t *testing.T) {
	client, rec := newTestClient(t, `{"records":[]}`)
	tl := findTool(t, ReportTools(client), "get_connection_reports")

	_, err := tl.Handler(context.Background(), map[string]any{
		"from_date":    "2024-01-01T00:00:00",
		"to_date":      "2024-02-01T00:00:00",
		"device_id":    "d1",
		"user_id":      "u1",
		"session_code": "s01",
		"limit":        float64(50),
		"offset":       float64(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.method != http.MethodGet || rec.path != "/reports/connections" {
		t.Errorf("expected GET /reports/connections, got %s %s", rec.method, rec.path)
	}

	want := map[string]string{
		"from":        "2024-01-01T00:00:00",
		"to":          "2024-02-01T00:00:00",
		"deviceid":    "d1",
		"userid":      "u1",
		"sessioncode": "s01",
		"limit":       "50",
		"offset":      "10",
	}
	for k, v := range want {
		if got := rec.query.Get(k); got != v {
			t.Errorf("query %s: expected %q, got %q", k, v, got)
		}
	}
	for _, stale := range []string{"from_date", "to_date", "device_id", "user_id", "session_code"} {
		if rec.query.Has(stale) {
			t.Errorf("tool argument name %q must not reach the API", stale)
		}
	}
}

func TestReportTools_NoFilters(t *testing.T) {
	client, rec := newTestClient(t, `{"records":[]}`)
	tl := findTool(t, ReportTools(client), "get_connection_reports")

	if _, err := tl.Handler(context.Background(), map[string]any{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.query) != 0 {
		t.Errorf("expected no query params, got %v", rec.query)
	}
}
