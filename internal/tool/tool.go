package tool

import "context"

// Param declares one parameter of a tool's input schema.
type Param struct {
	Name        string
	Type        string // JSON Schema type: "string", "boolean", "integer", "array", "object"
	Description string
	Required    bool
	Enum        []string
	Items       map[string]any // item schema for array params
	Default     any
}

// Tool binds a unique name and declared parameters to a handler that
// performs exactly one TeamViewer API request.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Handler     func(ctx context.Context, args map[string]any) (string, error)
}

// InputSchema renders the declared parameters as a JSON Schema object.
func (t Tool) InputSchema() map[string]any {
	props := make(map[string]any, len(t.Params))
	required := []string{}
	for _, p := range t.Params {
		prop := map[string]any{"type": p.Type}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Items != nil {
			prop["items"] = p.Items
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		props[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func getString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func getBool(args map[string]any, key string) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return false
}

// payload copies the named fields out of args, skipping absent ones.
// Mirrors the API convention that PUT/POST bodies contain only the
// fields the caller wants to change.
func payload(args map[string]any, fields ...string) map[string]any {
	out := map[string]any{}
	for _, f := range fields {
		if v, ok := args[f]; ok && v != nil {
			out[f] = v
		}
	}
	return out
}
