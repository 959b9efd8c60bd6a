// internal/defs/variants.go
package defs

const (
	VariantSprites = "sprites"
	VariantCircles = "circles"
)

// VariantLibrary holds all variant definitions, keyed by their ID.
// Built-in variants are always present; LoadVariantDefinitions may add or replace entries.
var VariantLibrary = map[string]VariantDefinition{
	VariantSprites: {
		ID:         VariantSprites,
		Title:      "Sphere Pop",
		Shape:      ShapeSprite,
		Color:      "#ffffff",
		Tint:       "#9ad0ff",
		PopPitch:   620,
		PopMillis:  140,
		Background: "#000000",
	},
	VariantCircles: {
		ID:         VariantCircles,
		Title:      "Circle Pop",
		Shape:      ShapeCircle,
		Color:      "#f2c14e",
		Tint:       "#f78154",
		PopPitch:   480,
		PopMillis:  120,
		Background: "#14141e",
	},
}

// Lookup возвращает вариант по ID.
func Lookup(id string) (VariantDefinition, bool) {
	def, ok := VariantLibrary[id]
	return def, ok
}
