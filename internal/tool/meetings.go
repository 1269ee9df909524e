package tool

import (
	"context"
	"net/url"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// MeetingTools returns the tools covering the meeting endpoints.
func MeetingTools(c *teamviewer.Client) []Tool {
	return []Tool{
		{
			Name:        "list_meetings",
			Description: "List all scheduled meetings in the account.",
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Get(ctx, "/meetings", nil)
			},
		},
		{
			Name:        "create_meeting",
			Description: "Schedule a new TeamViewer meeting.",
			Params: []Param{
				{Name: "subject", Type: "string", Description: "Meeting subject/title", Required: true},
				{Name: "start", Type: "string", Description: "Start time in ISO 8601 format (e.g. 2024-06-01T10:00:00)", Required: true},
				{Name: "end", Type: "string", Description: "End time in ISO 8601 format", Required: true},
				{Name: "password", Type: "string", Description: "Optional meeting password"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Post(ctx, "/meetings", payload(args, "subject", "start", "end", "password"))
			},
		},
		{
			Name:        "get_meeting",
			Description: "Get details of a specific meeting by meeting ID.",
			Params: []Param{
				{Name: "meeting_id", Type: "string", Description: "Meeting ID", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Get(ctx, "/meetings/"+url.PathEscape(getString(args, "meeting_id")), nil)
			},
		},
		{
			Name:        "update_meeting",
			Description: "Update an existing meeting's subject, time, or password.",
			Params: []Param{
				{Name: "meeting_id", Type: "string", Description: "Meeting ID", Required: true},
				{Name: "subject", Type: "string", Description: "New subject"},
				{Name: "start", Type: "string", Description: "New start time (ISO 8601)"},
				{Name: "end", Type: "string", Description: "New end time (ISO 8601)"},
				{Name: "password", Type: "string", Description: "New meeting password"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				path := "/meetings/" + url.PathEscape(getString(args, "meeting_id"))
				return c.Put(ctx, path, payload(args, "subject", "start", "end", "password"))
			},
		},
		{
			Name:        "delete_meeting",
			Description: "Delete a scheduled meeting.",
			Params: []Param{
				{Name: "meeting_id", Type: "string", Description: "Meeting ID to delete", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Delete(ctx, "/meetings/"+url.PathEscape(getString(args, "meeting_id")))
			},
		},
	}
}
