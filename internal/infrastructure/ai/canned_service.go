package ai

import (
	"context"
	"fmt"

	"github.com/jhoicas/tote-api/internal/application/ports"
	"github.com/jhoicas/tote-api/internal/application/prompt"
	"github.com/jhoicas/tote-api/internal/domain"
	"github.com/jhoicas/tote-api/pkg/logger"
)

// Verificar en tiempo de compilación que CannedService implementa LLMService.
var _ ports.LLMService = (*CannedService)(nil)

// cannedResponses respuestas fijas por esquema, en el mismo formato que devolvería el modelo.
var cannedResponses = map[string]string{
	prompt.SchemaRecommendations: `{"recommended_items": ["salsa de tomate", "queso rallado", "aceite de oliva", "albahaca"]}`,
	prompt.SchemaDishIngredients: `{"ingredients": ["carne picada", "cebolla", "ajo", "tomate", "morrones", "aceite", "sal", "pimienta"]}`,
	prompt.SchemaCategorization:  `{"categories": {"Lacteos": ["queso", "leche", "yogurt"], "Panaderia": ["pan", "facturas"]}}`,
}

// CannedService adaptador sin red para entornos sin credenciales: devuelve siempre la misma
// respuesta por esquema. No es caché ni fallback ante errores del proveedor real.
type CannedService struct {
	log *logger.Logger
}

// NewCannedService construye el adaptador de respuestas fijas.
func NewCannedService(log *logger.Logger) *CannedService {
	return &CannedService{log: log}
}

// CompleteStructured decodifica la respuesta fija del esquema pedido en target.
func (s *CannedService) CompleteStructured(_ context.Context, req ports.CompletionRequest, target any) error {
	raw, ok := cannedResponses[req.Schema.Name]
	if !ok {
		return fmt.Errorf("AI: %w: %s", domain.ErrUnknownSchema, req.Schema.Name)
	}
	s.log.Debug().Str("schema", req.Schema.Name).Msg("usando respuesta fija (sin credencial de proveedor)")
	return decodeStructured(raw, target)
}
