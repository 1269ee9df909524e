package tool

import (
	"context"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// PingTool returns the tool that verifies the API token against /ping.
func PingTool(c *teamviewer.Client) Tool {
	return Tool{
		Name:        "ping",
		Description: "Verify the API token is valid and the TeamViewer API is reachable.",
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			return c.Get(ctx, "/ping", nil)
		},
	}
}
