package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/tote-api/internal/application/dto"
	"github.com/jhoicas/tote-api/internal/application/ports"
	"github.com/jhoicas/tote-api/internal/application/prompt"
	"github.com/jhoicas/tote-api/internal/domain/entity"
)

// AIUseCase orquesta las tres operaciones asistidas por IA: arma el prompt, pide al
// proveedor un objeto estructurado y devuelve su campo tal cual. No reintenta ni
// post-procesa; cualquier error del proveedor se propaga.
type AIUseCase struct {
	llm     ports.LLMService
	prompts *prompt.Builder
	model   string
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, prompts *prompt.Builder) *AIUseCase {
	return &AIUseCase{llm: llm, prompts: prompts, model: prompt.DefaultModel}
}

// GetRecommendations sugiere productos complementarios para la lista de compras.
func (uc *AIUseCase) GetRecommendations(ctx context.Context, products []string) ([]string, error) {
	var out dto.RecommendationResponse
	text := uc.prompts.Recommendations(entity.ShoppingList(products))
	if err := uc.complete(ctx, text, prompt.RecommendationSchema, &out); err != nil {
		return nil, fmt.Errorf("recomendaciones: %w", err)
	}
	return out.RecommendedItems, nil
}

// GetDishIngredients devuelve los ingredientes de un plato.
func (uc *AIUseCase) GetDishIngredients(ctx context.Context, dishName string) ([]string, error) {
	var out dto.DishIngredientsResponse
	text := uc.prompts.DishIngredients(dishName)
	if err := uc.complete(ctx, text, prompt.DishIngredientsSchema, &out); err != nil {
		return nil, fmt.Errorf("ingredientes: %w", err)
	}
	return out.Ingredients, nil
}

// CategorizeProducts asigna categorías a los productos sin categoría. El mapeo devuelto
// es el del modelo, sin fusionar con el existente ni validar las claves.
func (uc *AIUseCase) CategorizeProducts(
	ctx context.Context,
	categorized map[string][]string,
	uncategorized []string,
) (map[string][]string, error) {
	text, err := uc.prompts.Categorization(categorized, uncategorized)
	if err != nil {
		return nil, fmt.Errorf("categorización: %w", err)
	}
	var out dto.CategorizationResponse
	if err := uc.complete(ctx, text, prompt.CategorizationSchema, &out); err != nil {
		return nil, fmt.Errorf("categorización: %w", err)
	}
	return out.Categories, nil
}

func (uc *AIUseCase) complete(ctx context.Context, text string, schema ports.OutputSchema, target any) error {
	return uc.llm.CompleteStructured(ctx, ports.CompletionRequest{
		Model:    uc.model,
		Messages: []ports.Message{{Role: ports.RoleUser, Content: text}},
		Schema:   schema,
	}, target)
}
