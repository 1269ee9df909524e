package tool

import (
	"context"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// AccountTools returns the tools covering the /account endpoints.
func AccountTools(c *teamviewer.Client) []Tool {
	return []Tool{
		{
			Name:        "get_account",
			Description: "Get the current TeamViewer account information (email, name, company, etc.).",
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Get(ctx, "/account", nil)
			},
		},
		{
			Name:        "update_account",
			Description: "Update the current TeamViewer account's profile information.",
			Params: []Param{
				{Name: "email", Type: "string", Description: "New email address"},
				{Name: "name", Type: "string", Description: "Display name"},
				{Name: "company", Type: "string", Description: "Company name"},
				{Name: "password", Type: "string", Description: "New password"},
				{Name: "old_password", Type: "string", Description: "Current password (required when changing password)"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Put(ctx, "/account", payload(args, "email", "name", "company", "password", "old_password"))
			},
		},
	}
}
