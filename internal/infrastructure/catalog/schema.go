package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of a catalog file.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&File{})

	schema.ID = "https://github.com/bnema/bangr/bangs.schema.json"
	schema.Title = "Bangr Catalog"
	schema.Description = "Bang definitions for bangr: triggers, service metadata and URL templates"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
