package tool

import (
	"context"
	"net/http"
	"testing"
)

func TestDeviceTools(t *testing.T) {
	client, rec := newTestClient(t, `{"devices":[]}`)
	tools := DeviceTools(client)

	if len(tools) != 4 {
		t.Fatalf("expected 4 device tools, got %d", len(tools))
	}

	t.Run("list_devices filters", func(t *testing.T) {
		tl := findTool(t, tools, "list_devices")
		_, err := tl.Handler(context.Background(), map[string]any{
			"groupid":      "g1",
			"online_state": "Online",
			"full_list":    true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.method != http.MethodGet || rec.path != "/devices" {
			t.Errorf("expected GET /devices, got %s %s", rec.method, rec.path)
		}
		if rec.query.Get("groupid") != "g1" || rec.query.Get("online_state") != "Online" {
			t.Errorf("unexpected query %v", rec.query)
		}
		if rec.query.Get("full_list") != "true" {
			t.Errorf("expected full_list=true, got %q", rec.query.Get("full_list"))
		}
	})

	t.Run("list_devices no filters", func(t *testing.T) {
		tl := findTool(t, tools, "list_devices")
		if _, err := tl.Handler(context.Background(), map[string]any{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rec.query) != 0 {
			t.Errorf("expected no query params, got %v", rec.query)
		}
	})

	t.Run("get_device", func(t *testing.T) {
		tl := findTool(t, tools, "get_device")
		if _, err := tl.Handler(context.Background(), map[string]any{"device_id": "d123"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.method != http.MethodGet || rec.path != "/devices/d123" {
			t.Errorf("expected GET /devices/d123, got %s %s", rec.method, rec.path)
		}
	})

	t.Run("update_device sends only supplied fields", func(t *testing.T) {
		tl := findTool(t, tools, "update_device")
		_, err := tl.Handler(context.Background(), map[string]any{
			"device_id": "d123",
			"alias":     "office-pc",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.method != http.MethodPut || rec.path != "/devices/d123" {
			t.Errorf("expected PUT /devices/d123, got %s %s", rec.method, rec.path)
		}
		if rec.body["alias"] != "office-pc" {
			t.Errorf("expected alias in body, got %v", rec.body)
		}
		if _, ok := rec.body["device_id"]; ok {
			t.Error("device_id must not leak into the body")
		}
		if _, ok := rec.body["description"]; ok {
			t.Error("absent fields must not appear in the body")
		}
	})

	t.Run("delete_device", func(t *testing.T) {
		tl := findTool(t, tools, "delete_device")
		if _, err := tl.Handler(context.Background(), map[string]any{"device_id": "d9"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.method != http.MethodDelete || rec.path != "/devices/d9" {
			t.Errorf("expected DELETE /devices/d9, got %s %s", rec.method, rec.path)
		}
	})
}

func TestDeviceTools_ValidationMakesNoRequest(t *testing.T) {
	client, rec := newTestClient(t, `{}`)
	reg := NewRegistry()
	for _, tl := range DeviceTools(client) {
		if err := reg.Register(tl); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	_, err := reg.Execute(context.Background(), "get_device", map[string]any{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if rec.count.Load() != 0 {
		t.Errorf("expected zero outbound requests, got %d", rec.count.Load())
	}

	_, err = reg.Execute(context.Background(), "list_devices", map[string]any{"online_state": "Sleeping"})
	if err == nil {
		t.Fatal("expected enum validation error")
	}
	if rec.count.Load() != 0 {
		t.Errorf("expected zero outbound requests, got %d", rec.count.Load())
	}

	if _, err := reg.Execute(context.Background(), "get_device", map[string]any{"device_id": "d1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.count.Load() != 1 {
		t.Errorf("expected exactly one outbound request, got %d", rec.count.Load())
	}
}
