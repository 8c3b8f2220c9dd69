package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tote-api/internal/application/usecase"
	"github.com/jhoicas/tote-api/internal/infrastructure/tracking"
	"github.com/jhoicas/tote-api/pkg/config"
	"github.com/jhoicas/tote-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AIUC     *usecase.AIUseCase
	Logger   *logger.Logger
	Reporter tracking.Reporter
	Docs     config.DocsConfig
}

// NewApp arma la aplicación Fiber completa: middlewares, swagger UI y rutas.
// La usan tanto el servidor HTTP como el handler de Lambda.
func NewApp(appName string, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(deps.Logger),
	})

	app.Use(Recover(deps.Logger, deps.Reporter))
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Logger))
	app.Use(CORS())

	// Swagger UI en /docs; el middleware falla si el archivo no existe.
	if deps.Docs.Enabled {
		if _, err := os.Stat(deps.Docs.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.Docs.FilePath,
				Path:     "docs",
				Title:    "Tote API",
			}))
		} else {
			deps.Logger.Warn().Str("file", deps.Docs.FilePath).Msg("swagger UI deshabilitado: no se encontró el documento")
		}
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	systemHandler := NewSystemHandler(deps.Logger)
	app.Get("/health", systemHandler.Health)
	app.Get("/openapi.json", systemHandler.OpenAPI)
	app.Get("/sentry-debug", systemHandler.TriggerError)

	aiHandler := NewAIHandler(deps.AIUC, deps.Logger, deps.Reporter)
	app.Post("/recommendations", aiHandler.Recommendations)
	app.Get("/dishes/ingredients", aiHandler.DishIngredients)
	app.Post("/categorize-products", aiHandler.CategorizeProducts)
}
