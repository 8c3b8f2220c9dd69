package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tote-api/internal/application/dto"
	"github.com/jhoicas/tote-api/internal/application/usecase"
	"github.com/jhoicas/tote-api/internal/infrastructure/tracking"
	"github.com/jhoicas/tote-api/pkg/logger"
)

// Mensajes fijos de los 500: el detalle del proveedor nunca llega al cliente.
const (
	msgRecommendationsFailed = "Failed to get recommendations"
	msgIngredientsFailed     = "Failed to get dish ingredients"
	msgCategorizationFailed  = "Failed to categorize products"
)

// AIHandler maneja los endpoints del asistente de compras.
type AIHandler struct {
	uc       *usecase.AIUseCase
	log      *logger.Logger
	reporter tracking.Reporter
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase, log *logger.Logger, reporter tracking.Reporter) *AIHandler {
	return &AIHandler{uc: uc, log: log, reporter: reporter}
}

// Recommendations godoc
// @Summary      Recomendar productos complementarios
// @Description  Sugiere productos que suelen comprarse junto con los de la lista.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RecommendationRequest  true  "Lista de compras"
// @Success      200   {object}  dto.RecommendationResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /recommendations [post]
func (h *AIHandler) Recommendations(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if items := bindJSON(c, &req); items != nil {
		return validationError(c, items)
	}

	log := requestLogger(c, h.log)
	log.Info().Int("products", len(req.Products)).Msg("recomendaciones: solicitud recibida")

	recommended, err := h.uc.GetRecommendations(c.UserContext(), req.Products)
	if err != nil {
		log.Error().Err(err).Msg("recomendaciones: fallo del proveedor")
		h.reporter.CaptureError(err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: msgRecommendationsFailed})
	}
	if recommended == nil {
		recommended = []string{}
	}

	log.Info().Int("recommended", len(recommended)).Msg("recomendaciones: respuesta enviada")
	return c.JSON(dto.RecommendationResponse{RecommendedItems: recommended})
}

// DishIngredients godoc
// @Summary      Ingredientes de un plato
// @Description  Devuelve los ingredientes típicos para preparar el plato indicado.
// @Tags         assistant
// @Produce      json
// @Param        dish_name  query     string  true  "Nombre del plato"
// @Success      200        {object}  dto.DishIngredientsResponse
// @Failure      422        {object}  dto.ValidationErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /dishes/ingredients [get]
func (h *AIHandler) DishIngredients(c *fiber.Ctx) error {
	dish, items := requireQuery(c, "dish_name")
	if items != nil {
		return validationError(c, items)
	}

	log := requestLogger(c, h.log)
	log.Info().Str("dish", dish).Msg("ingredientes: solicitud recibida")

	ingredients, err := h.uc.GetDishIngredients(c.UserContext(), dish)
	if err != nil {
		log.Error().Err(err).Str("dish", dish).Msg("ingredientes: fallo del proveedor")
		h.reporter.CaptureError(err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: msgIngredientsFailed})
	}
	if ingredients == nil {
		ingredients = []string{}
	}

	log.Info().Int("ingredients", len(ingredients)).Msg("ingredientes: respuesta enviada")
	return c.JSON(dto.DishIngredientsResponse{Ingredients: ingredients})
}

// CategorizeProducts godoc
// @Summary      Categorizar productos
// @Description  Asigna una categoría de góndola a cada producto sin categoría, usando
// @Description  las categorías existentes como contexto.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CategorizationRequest  true  "Productos categorizados y sin categoría"
// @Success      200   {object}  dto.CategorizationResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /categorize-products [post]
func (h *AIHandler) CategorizeProducts(c *fiber.Ctx) error {
	var req dto.CategorizationRequest
	if items := bindJSON(c, &req); items != nil {
		return validationError(c, items)
	}

	log := requestLogger(c, h.log)
	log.Info().
		Int("categorized", len(req.CategorizedProducts)).
		Int("uncategorized", len(req.UncategorizedProducts)).
		Msg("categorización: solicitud recibida")

	categories, err := h.uc.CategorizeProducts(c.UserContext(), req.CategorizedProducts, req.UncategorizedProducts)
	if err != nil {
		log.Error().Err(err).Msg("categorización: fallo del proveedor")
		h.reporter.CaptureError(err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: msgCategorizationFailed})
	}
	if categories == nil {
		categories = map[string][]string{}
	}

	log.Info().Int("categories", len(categories)).Msg("categorización: respuesta enviada")
	return c.JSON(dto.CategorizationResponse{Categories: categories})
}
