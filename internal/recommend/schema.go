package recommend

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema is a named JSON Schema for one service response.
type responseSchema struct {
	Name       string
	Definition map[string]any
}

var flagValue = map[string]any{
	"type": []any{"string", "boolean", "number"},
}

// predictSchema accepts both observed prediction shapes: a list under
// "ingredients", or a flat object of ingredient flags.
var predictSchema = &responseSchema{
	Name: "predict-response",
	Definition: map[string]any{
		"oneOf": []any{
			map[string]any{
				"type":     "object",
				"required": []any{"ingredients"},
				"properties": map[string]any{
					"ingredients": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
			map[string]any{
				"type":                 "object",
				"not":                  map[string]any{"required": []any{"ingredients"}},
				"additionalProperties": flagValue,
			},
		},
	},
}

var productsSchema = &responseSchema{
	Name: "filter-products-response",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"products"},
		"properties": map[string]any{
			"products": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
		},
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validate checks raw against the schema. The returned error wraps
// ErrMalformedResponse.
func (s *responseSchema) validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrMalformedResponse, err)
	}

	compiled, err := s.compiled()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func (s *responseSchema) compiled() (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// Round-trip through JSON so the compiler sees plain decoded values.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(s.Name, compiled)
	return compiled, nil
}
