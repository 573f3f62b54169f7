package reel

import (
	"sync"

	"github.com/invopop/jsonschema"
)

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
)

// Schema returns the JSON Schema describing a resolved Reel payload.
func Schema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		reflector := &jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            false,
			ExpandedStruct:            true,
		}
		schema = reflector.Reflect(&Reel{})
		schema.Title = "Reel"
		schema.Description = "Sanitized media links resolved for a reel link"
	})
	return schema
}
