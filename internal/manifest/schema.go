package manifest

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// manifestSchema is the contract consumers of the manifest rely on. Every
// manifest is validated against it before it is written.
const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["source", "total_chunks", "chunks"],
  "properties": {
    "source": { "type": "string", "minLength": 1 },
    "total_chunks": { "type": "integer", "minimum": 0 },
    "chunks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "file", "index", "priority", "tokens", "provenance"],
        "properties": {
          "id": { "type": "string", "minLength": 36, "maxLength": 36 },
          "file": { "type": "string", "minLength": 1 },
          "index": { "type": "integer", "minimum": 0 },
          "priority": { "type": "string", "enum": ["P0", "P1", "P2", "P3"] },
          "tokens": { "type": "integer", "minimum": 0 },
          "provenance": { "type": "array", "items": { "type": "string" } },
          "over_budget": { "type": "boolean" }
        }
      }
    },
    "skipped_files": { "type": "array", "items": { "type": "string" } },
    "priority_distribution": {
      "type": "object",
      "additionalProperties": { "type": "integer", "minimum": 0 }
    },
    "warnings": { "type": "array", "items": { "type": "string" } }
  }
}`

// ValidateManifest checks encoded manifest JSON against the schema.
func ValidateManifest(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(manifestSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%s", strings.Join(problems, "; "))
}
