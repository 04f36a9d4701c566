package config

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// rawSchema closes the raw configuration over its recognized keys.
// Reference validation (metric and insight identities, preset names, ide
// identifiers) happens in the resolver, which produces the precise
// per-field messages; the schema only rejects unknown keys and
// wrong-shaped values.
const rawSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"preset":    {"type": "string"},
		"directory": {"type": "string"},
		"exclude":   {"type": "array", "items": {"type": "string"}},
		"add":       {"type": "object"},
		"remove":    {"type": "array", "items": {"type": "string"}},
		"config":    {"type": "object", "additionalProperties": {"type": "object"}},
		"ide":       {"type": "string"}
	}
}`

func validateSchema(raw map[string]any) error {
	schemaLoader := gojsonschema.NewStringLoader(rawSchema)
	documentLoader := gojsonschema.NewGoLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate configuration schema: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, result.Errors()[0])
	}

	return nil
}
