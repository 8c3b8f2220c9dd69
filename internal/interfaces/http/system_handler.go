package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tote-api/docs"
	"github.com/jhoicas/tote-api/internal/application/dto"
	"github.com/jhoicas/tote-api/pkg/logger"
)

// zero divisor de /sentry-debug; variable para que la división ocurra en tiempo de ejecución.
var zero int

// SystemHandler endpoints operativos: health, documento OpenAPI y prueba de errores.
type SystemHandler struct {
	log *logger.Logger
}

func NewSystemHandler(log *logger.Logger) *SystemHandler {
	return &SystemHandler{log: log}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}

// OpenAPI sirve el documento generado por swag.
func (h *SystemHandler) OpenAPI(c *fiber.Ctx) error {
	c.Type("json")
	return c.SendString(docs.SwaggerInfo.ReadDoc())
}

// TriggerError godoc
// @Summary      Provocar un error
// @Description  Provoca un error no manejado para verificar el reporte de errores.
// @Tags         system
// @Produce      json
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sentry-debug [get]
func (h *SystemHandler) TriggerError(c *fiber.Ctx) error {
	requestLogger(c, h.log).Warn().Msg("sentry-debug: provocando división por cero")
	return c.JSON(fiber.Map{"result": 1 / zero})
}
