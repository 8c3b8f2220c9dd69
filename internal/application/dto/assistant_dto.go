package dto

// RecommendationRequest lista de compras actual, en el orden en que se agregaron los productos.
type RecommendationRequest struct {
	Products []string `json:"products" validate:"required"`
}

// RecommendationResponse productos complementarios sugeridos por el modelo.
type RecommendationResponse struct {
	RecommendedItems []string `json:"recommended_items" validate:"required"`
}

// DishIngredientsResponse ingredientes de un plato.
type DishIngredientsResponse struct {
	Ingredients []string `json:"ingredients" validate:"required"`
}

// CategorizationRequest productos ya categorizados (contexto) y productos a categorizar.
type CategorizationRequest struct {
	CategorizedProducts   map[string][]string `json:"categorized_products" validate:"required"`
	UncategorizedProducts []string            `json:"uncategorized_products" validate:"required"`
}

// CategorizationResponse categoría -> productos. Las claves no se validan contra el vocabulario.
type CategorizationResponse struct {
	Categories map[string][]string `json:"categories" validate:"required"`
}
