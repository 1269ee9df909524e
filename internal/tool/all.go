package tool

import "github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"

// All returns every TeamViewer tool bound to the given client.
func All(c *teamviewer.Client) []Tool {
	var tools []Tool
	tools = append(tools, PingTool(c))
	tools = append(tools, AccountTools(c)...)
	tools = append(tools, DeviceTools(c)...)
	tools = append(tools, GroupTools(c)...)
	tools = append(tools, UserTools(c)...)
	tools = append(tools, SessionTools(c)...)
	tools = append(tools, ReportTools(c)...)
	tools = append(tools, MeetingTools(c)...)
	tools = append(tools, PolicyTools(c)...)
	return tools
}
