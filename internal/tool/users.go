package tool

import (
	"context"
	"net/url"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// UserTools returns the tools covering the Management Console user endpoints.
func UserTools(c *teamviewer.Client) []Tool {
	return []Tool{
		{
			Name:        "list_users",
			Description: "List all users in the TeamViewer Management Console company account.",
			Params: []Param{
				{Name: "name", Type: "string", Description: "Filter by name"},
				{Name: "email", Type: "string", Description: "Filter by email"},
				{Name: "permissions", Type: "string", Description: "Filter by permission level"},
				{Name: "full_list", Type: "boolean", Description: "Return full user details"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				q := url.Values{}
				for _, field := range []string{"name", "email", "permissions"} {
					if v := getString(args, field); v != "" {
						q.Set(field, v)
					}
				}
				if getBool(args, "full_list") {
					q.Set("full_list", "true")
				}
				return c.Get(ctx, "/users", q)
			},
		},
		{
			Name:        "create_user",
			Description: "Create a new user in the TeamViewer Management Console.",
			Params: []Param{
				{Name: "email", Type: "string", Description: "User email address", Required: true},
				{Name: "name", Type: "string", Description: "User display name", Required: true},
				{Name: "password", Type: "string", Description: "Initial password", Required: true},
				{Name: "permissions", Type: "string", Description: "Permission level (e.g. Administrator, User)"},
				{Name: "language", Type: "string", Description: "Language code (e.g. en, de)"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Post(ctx, "/users", payload(args, "email", "name", "password", "permissions", "language"))
			},
		},
		{
			Name:        "get_user",
			Description: "Get details of a specific user by user ID.",
			Params: []Param{
				{Name: "user_id", Type: "string", Description: "User ID (e.g. u123456)", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Get(ctx, "/users/"+url.PathEscape(getString(args, "user_id")), nil)
			},
		},
		{
			Name:        "update_user",
			Description: "Update a user's profile or permissions.",
			Params: []Param{
				{Name: "user_id", Type: "string", Description: "User ID", Required: true},
				{Name: "email", Type: "string", Description: "New email"},
				{Name: "name", Type: "string", Description: "New display name"},
				{Name: "permissions", Type: "string", Description: "New permission level"},
				{Name: "active", Type: "boolean", Description: "Whether the account is active"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				path := "/users/" + url.PathEscape(getString(args, "user_id"))
				return c.Put(ctx, path, payload(args, "email", "name", "permissions", "active"))
			},
		},
	}
}
