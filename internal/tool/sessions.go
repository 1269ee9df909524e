package tool

import (
	"context"
	"net/url"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// SessionTools returns the tools covering the service queue session
// endpoints.
func SessionTools(c *teamviewer.Client) []Tool {
	return []Tool{
		{
			Name:        "list_sessions",
			Description: "List support sessions (service queue) optionally filtered by group or state.",
			Params: []Param{
				{Name: "groupid", Type: "string", Description: "Filter by group ID"},
				{Name: "state", Type: "string", Description: "Session state filter", Enum: []string{"open", "closed"}},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				q := url.Values{}
				if v := getString(args, "groupid"); v != "" {
					q.Set("groupid", v)
				}
				if v := getString(args, "state"); v != "" {
					q.Set("state", v)
				}
				return c.Get(ctx, "/sessions", q)
			},
		},
		{
			Name:        "create_session",
			Description: "Create a new support session (service case).",
			Params: []Param{
				{Name: "groupid", Type: "string", Description: "Group ID for the session", Required: true},
				{Name: "description", Type: "string", Description: "Session description"},
				{Name: "custom_internal_id", Type: "string", Description: "Custom reference ID"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Post(ctx, "/sessions", payload(args, "groupid", "description", "custom_internal_id"))
			},
		},
		{
			Name:        "get_session",
			Description: "Get details of a specific support session by session code.",
			Params: []Param{
				{Name: "session_code", Type: "string", Description: "Session code (e.g. s00-000-000)", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Get(ctx, "/sessions/"+url.PathEscape(getString(args, "session_code")), nil)
			},
		},
		{
			Name:        "update_session",
			Description: "Update a support session's description or custom internal ID.",
			Params: []Param{
				{Name: "session_code", Type: "string", Description: "Session code", Required: true},
				{Name: "description", Type: "string", Description: "New description"},
				{Name: "custom_internal_id", Type: "string", Description: "New custom reference ID"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				path := "/sessions/" + url.PathEscape(getString(args, "session_code"))
				return c.Put(ctx, path, payload(args, "description", "custom_internal_id"))
			},
		},
		{
			Name:        "close_session",
			Description: "Close an open support session.",
			Params: []Param{
				{Name: "session_code", Type: "string", Description: "Session code to close", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				path := "/sessions/" + url.PathEscape(getString(args, "session_code"))
				return c.Put(ctx, path, map[string]any{"state": "closed"})
			},
		},
	}
}
