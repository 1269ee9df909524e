package tool

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ValidationError reports arguments that do not satisfy a tool's declared
// schema. It is returned before any network request is made.
type ValidationError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid argument %q: %s", e.Tool, e.Field, e.Reason)
}

// Validate checks args against the tool's declared parameters. Arguments
// not declared by the tool are ignored.
func (t Tool) Validate(args map[string]any) error {
	for _, p := range t.Params {
		v, ok := args[p.Name]
		if !ok || v == nil {
			if p.Required {
				return &ValidationError{Tool: t.Name, Field: p.Name, Reason: "required argument is missing"}
			}
			continue
		}
		if err := checkType(t.Name, p, v); err != nil {
			return err
		}
	}
	return nil
}

func checkType(tool string, p Param, v any) error {
	switch p.Type {
	case "string":
		s, ok := v.(string)
		if !ok {
			return typeError(tool, p.Name, "string", v)
		}
		if len(p.Enum) > 0 && !slices.Contains(p.Enum, s) {
			return &ValidationError{
				Tool:   tool,
				Field:  p.Name,
				Reason: fmt.Sprintf("must be one of: %s", strings.Join(p.Enum, ", ")),
			}
		}
	case "boolean":
		if _, ok := v.(bool); !ok {
			return typeError(tool, p.Name, "boolean", v)
		}
	case "integer":
		// JSON numbers decode as float64.
		switch n := v.(type) {
		case float64:
			if n != math.Trunc(n) {
				return typeError(tool, p.Name, "integer", v)
			}
		case int, int64:
		default:
			return typeError(tool, p.Name, "integer", v)
		}
	case "array":
		if _, ok := v.([]any); !ok {
			return typeError(tool, p.Name, "array", v)
		}
	case "object":
		if _, ok := v.(map[string]any); !ok {
			return typeError(tool, p.Name, "object", v)
		}
	}
	return nil
}

func typeError(tool, field, want string, got any) *ValidationError {
	return &ValidationError{
		Tool:   tool,
		Field:  field,
		Reason: fmt.Sprintf("expected %s, got %T", want, got),
	}
}
