package tool

import (
	"context"
	"net/url"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// DeviceTools returns the tools covering the Computers & Contacts device
// endpoints.
func DeviceTools(c *teamviewer.Client) []Tool {
	return []Tool{
		{
			Name:        "list_devices",
			Description: "List all devices (Computers & Contacts) in the account. Optionally filter by group ID, online status, or name.",
			Params: []Param{
				{Name: "groupid", Type: "string", Description: "Filter by group ID"},
				{Name: "online_state", Type: "string", Description: "Filter by online status", Enum: []string{"Online", "Busy", "Away", "Offline"}},
				{Name: "full_list", Type: "boolean", Description: "Return full device details"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				q := url.Values{}
				if v := getString(args, "groupid"); v != "" {
					q.Set("groupid", v)
				}
				if v := getString(args, "online_state"); v != "" {
					q.Set("online_state", v)
				}
				if getBool(args, "full_list") {
					q.Set("full_list", "true")
				}
				return c.Get(ctx, "/devices", q)
			},
		},
		{
			Name:        "get_device",
			Description: "Get details of a specific device by its device ID.",
			Params: []Param{
				{Name: "device_id", Type: "string", Description: "The device ID (e.g. d123456789)", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Get(ctx, "/devices/"+url.PathEscape(getString(args, "device_id")), nil)
			},
		},
		{
			Name:        "update_device",
			Description: "Update a device's alias, description, password, or group assignment.",
			Params: []Param{
				{Name: "device_id", Type: "string", Description: "Device ID", Required: true},
				{Name: "alias", Type: "string", Description: "New alias/display name"},
				{Name: "description", Type: "string", Description: "Description"},
				{Name: "password", Type: "string", Description: "Remote control password"},
				{Name: "groupid", Type: "string", Description: "Target group ID to move the device"},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				path := "/devices/" + url.PathEscape(getString(args, "device_id"))
				return c.Put(ctx, path, payload(args, "alias", "description", "password", "groupid"))
			},
		},
		{
			Name:        "delete_device",
			Description: "Remove a device from the Computers & Contacts list.",
			Params: []Param{
				{Name: "device_id", Type: "string", Description: "Device ID to remove", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return c.Delete(ctx, "/devices/"+url.PathEscape(getString(args, "device_id")))
			},
		},
	}
}
