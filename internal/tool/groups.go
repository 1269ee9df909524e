package tool

import (
	"context"
	"net/url"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// GroupTools returns the tools covering the Computers & Contacts group
// endpoints.
func GroupTools(c *teamviewer.Client) []Tool {
	return []Tool{
		{
			Name:        "list_groups",
			Description: "List all groups in the account. Optionally filter by name.",
			Params: []Param{
				{Name: "name", Type: "string", Description: "Filter groups by name (partial match)"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				q := url.Values{}
				if v := getString(args, "name"); v != "" {
					q.Set("name", v)
				}
				return c.Get(ctx, "/groups", q)
			},
		},
		{
			Name:        "create_group",
			Description: "Create a new group in Computers & Contacts.",
			Params: []Param{
				{Name: "name", Type: "string", Description: "Group name", Required: true},
				{Name: "policy_id", Type: "string", Description: "Policy ID to assign to the group"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Post(ctx, "/groups", payload(args, "name", "policy_id"))
			},
		},
		{
			Name:        "update_group",
			Description: "Rename a group or change its assigned policy.",
			Params: []Param{
				{Name: "group_id", Type: "string", Description: "Group ID", Required: true},
				{Name: "name", Type: "string", Description: "New group name"},
				{Name: "policy_id", Type: "string", Description: "New policy ID"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				path := "/groups/" + url.PathEscape(getString(args, "group_id"))
				return c.Put(ctx, path, payload(args, "name", "policy_id"))
			},
		},
		{
			Name:        "delete_group",
			Description: "Delete a group from Computers & Contacts.",
			Params: []Param{
				{Name: "group_id", Type: "string", Description: "Group ID to delete", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Delete(ctx, "/groups/"+url.PathEscape(getString(args, "group_id")))
			},
		},
		{
			Name:        "share_group",
			Description: "Share a group with other TeamViewer users.",
			Params: []Param{
				{Name: "group_id", Type: "string", Description: "Group ID to share", Required: true},
				{
					Name:        "users",
					Type:        "array",
					Description: "List of user objects to share with",
					Required:    true,
					Items: map[string]any{
						"type": "object",
						"properties": map[string]any{
							"userid":      map[string]any{"type": "string"},
							"permissions": map[string]any{"type": "string", "enum": []string{"read", "readwrite", "full"}},
						},
						"required": []string{"userid", "permissions"},
					},
				},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				path := "/groups/" + url.PathEscape(getString(args, "group_id")) + "/share_group"
				return c.Post(ctx, path, map[string]any{"users": args["users"]})
			},
		},
	}
}
