package prompt

import "github.com/jhoicas/tote-api/internal/application/ports"

// Modelo usado por las tres operaciones.
const DefaultModel = "llama-3.3-70b-versatile"

// Nombres de los esquemas de salida.
const (
	SchemaRecommendations = "RecommendationResponse"
	SchemaDishIngredients = "DishIngredientsResponse"
	SchemaCategorization  = "CategorizationResponse"
)

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// RecommendationSchema objeto con recommended_items: [string].
var RecommendationSchema = ports.OutputSchema{
	Name: SchemaRecommendations,
	JSONSchema: map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"recommended_items": stringArray},
		"required":             []string{"recommended_items"},
		"additionalProperties": false,
	},
}

// DishIngredientsSchema objeto con ingredients: [string].
var DishIngredientsSchema = ports.OutputSchema{
	Name: SchemaDishIngredients,
	JSONSchema: map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"ingredients": stringArray},
		"required":             []string{"ingredients"},
		"additionalProperties": false,
	},
}

// CategorizationSchema objeto con categories: {string: [string]}.
var CategorizationSchema = ports.OutputSchema{
	Name: SchemaCategorization,
	JSONSchema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"categories": map[string]any{
				"type":                 "object",
				"additionalProperties": stringArray,
			},
		},
		"required":             []string{"categories"},
		"additionalProperties": false,
	},
}
