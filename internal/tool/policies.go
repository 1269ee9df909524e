package tool

import (
	"context"
	"net/url"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// PolicyTools returns the tools covering the policy endpoints.
func PolicyTools(c *teamviewer.Client) []Tool {
	return []Tool{
		{
			Name:        "list_policies",
			Description: "List all TeamViewer policies defined in the Management Console.",
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Get(ctx, "/teamviewerpolicies", nil)
			},
		},
		{
			Name:        "get_policy",
			Description: "Get details of a specific policy by policy ID.",
			Params: []Param{
				{Name: "policy_id", Type: "string", Description: "Policy ID", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Get(ctx, "/teamviewerpolicies/"+url.PathEscape(getString(args, "policy_id")), nil)
			},
		},
	}
}
