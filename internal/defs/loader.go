// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadVariantDefinitions reads a variant definitions file and merges it into VariantLibrary.
func LoadVariantDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read variant definitions file: %w", err)
	}

	var variantDefs []VariantDefinition
	if err := json.Unmarshal(file, &variantDefs); err != nil {
		return fmt.Errorf("failed to unmarshal variant definitions: %w", err)
	}

	for _, def := range variantDefs {
		if def.ID == "" {
			return fmt.Errorf("variant definition without id in %s", path)
		}
		if def.Shape != ShapeSprite && def.Shape != ShapeCircle {
			return fmt.Errorf("variant %s: unknown shape %q", def.ID, def.Shape)
		}
		if _, err := def.RGBA(); err != nil {
			return fmt.Errorf("variant %s: %w", def.ID, err)
		}
		VariantLibrary[def.ID] = def
	}

	log.Printf("Loaded %d variant definitions", len(variantDefs))
	return nil
}
