package llm

import (
	"fmt"
	"math"
)

type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Schema is a provider-neutral description of a structured response.
// Providers translate it into their own representation.
type Schema struct {
	Type        Type
	Description string
	Properties  map[string]*Schema
	// PropertyOrdering fixes the order providers emit properties in.
	PropertyOrdering []string
	Required         []string
	Items            *Schema
}

// Validate checks a value decoded by encoding/json into interface{} against
// the schema. Properties not declared in the schema are ignored.
func (s *Schema) Validate(v any) error {
	return s.validate("$", v)
}

func (s *Schema) validate(path string, v any) error {
	if s == nil {
		return nil
	}

	switch s.Type {
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return violation(path, "expected object")
		}
		for _, name := range s.Required {
			if val, ok := obj[name]; !ok || val == nil {
				return violation(path+"."+name, "required property missing")
			}
		}
		for name, prop := range s.Properties {
			val, ok := obj[name]
			if !ok || val == nil {
				continue
			}
			if err := prop.validate(path+"."+name, val); err != nil {
				return err
			}
		}
	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return violation(path, "expected array")
		}
		for i, item := range arr {
			if err := s.Items.validate(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}
	case TypeString:
		if _, ok := v.(string); !ok {
			return violation(path, "expected string")
		}
	case TypeNumber:
		if _, ok := v.(float64); !ok {
			return violation(path, "expected number")
		}
	case TypeInteger:
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			return violation(path, "expected integer")
		}
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return violation(path, "expected boolean")
		}
	}
	return nil
}

func violation(path, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrSchemaViolation, path, msg)
}

// JSONSchema renders the schema as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = append([]string(nil), s.Required...)
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	return out
}
