package tool

import (
	"context"
	"fmt"
	"net/url"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// ReportTools returns the tools covering the connection report endpoints.
func ReportTools(c *teamviewer.Client) []Tool {
	return []Tool{
		{
			Name:        "get_connection_reports",
			Description: "Retrieve connection reports. Filter by date range, device ID, user, or session. Returns details about all remote connections made.",
			Params: []Param{
				{Name: "from_date", Type: "string", Description: "Start date in ISO 8601 format (e.g. 2024-01-01T00:00:00)"},
				{Name: "to_date", Type: "string", Description: "End date in ISO 8601 format"},
				{Name: "device_id", Type: "string", Description: "Filter by device ID"},
				{Name: "user_id", Type: "string", Description: "Filter by user ID"},
				{Name: "session_code", Type: "string", Description: "Filter by session code"},
				{Name: "limit", Type: "integer", Description: "Maximum number of records to return", Default: 100},
				{Name: "offset", Type: "integer", Description: "Pagination offset", Default: 0},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				// Tool argument names differ from the API's query parameter names.
				q := url.Values{}
				for arg, param := range map[string]string{
					"from_date":    "from",
					"to_date":      "to",
					"device_id":    "deviceid",
					"user_id":      "userid",
					"session_code": "sessioncode",
				} {
					if v := getString(args, arg); v != "" {
						q.Set(param, v)
					}
				}
				for _, field := range []string{"limit", "offset"} {
					if v, ok := args[field]; ok && v != nil {
						q.Set(field, formatNumber(v))
					}
				}
				return c.Get(ctx, "/reports/connections", q)
			},
		},
	}
}

// formatNumber renders a JSON-decoded numeric argument without a trailing
// fractional part.
func formatNumber(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}
