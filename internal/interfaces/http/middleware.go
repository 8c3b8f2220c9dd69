package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/jhoicas/tote-api/internal/application/dto"
	"github.com/jhoicas/tote-api/internal/infrastructure/tracking"
	"github.com/jhoicas/tote-api/pkg/logger"
)

const requestIDKey = "requestid"

// RequestID asigna un UUID a cada petición (o respeta el X-Request-ID entrante).
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	})
}

// GetRequestID devuelve el id asignado por RequestID, o "" si no corrió.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

func requestLogger(c *fiber.Ctx, log *logger.Logger) *logger.Logger {
	if id := GetRequestID(c); id != "" {
		return log.WithField("request_id", id)
	}
	return log
}

// RequestLogger registra método, ruta, status y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// CORS abierto: cualquier origen, método y header. Sin credenciales, porque Fiber no
// admite AllowCredentials junto con el origen comodín.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
		AllowCredentials: false,
	})
}

// Recover convierte un panic en error 500 y lo reporta.
func Recover(log *logger.Logger, reporter tracking.Reporter) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error().
				Str("request_id", GetRequestID(c)).
				Str("path", c.Path()).
				Interface("panic", e).
				Msg("panic recuperado")
			reporter.CapturePanic(e)
		},
	})
}

// ErrorHandler traduce los errores no manejados al cuerpo {"detail": "..."}.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("error no manejado")
		}
		return c.Status(code).JSON(dto.ErrorResponse{Detail: utils.StatusMessage(code)})
	}
}
