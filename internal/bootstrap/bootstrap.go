// Package bootstrap arma la aplicación completa a partir de la configuración. Lo comparten
// el servidor HTTP (cmd/api) y el handler de Lambda (cmd/lambda).
package bootstrap

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tote-api/internal/application/prompt"
	"github.com/jhoicas/tote-api/internal/application/usecase"
	infraai "github.com/jhoicas/tote-api/internal/infrastructure/ai"
	"github.com/jhoicas/tote-api/internal/infrastructure/tracking"
	httpRouter "github.com/jhoicas/tote-api/internal/interfaces/http"
	"github.com/jhoicas/tote-api/pkg/config"
	"github.com/jhoicas/tote-api/pkg/logger"
)

// App aplicación lista para servir.
type App struct {
	Fiber    *fiber.App
	Reporter *tracking.SentryReporter
}

// New construye proveedor, caso de uso, reporte de errores y router.
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	reporter, err := tracking.NewSentryReporter(cfg.Sentry, cfg.App.Name)
	if err != nil {
		return nil, err
	}

	prompts, err := prompt.NewBuilder(cfg.LLM.MarketLocale)
	if err != nil {
		return nil, fmt.Errorf("prompts: %w", err)
	}

	llm := infraai.NewLLMService(cfg.LLM, log)
	aiUC := usecase.NewAIUseCase(llm, prompts)

	log.Info().
		Str("provider", cfg.LLM.Provider).
		Bool("offline", cfg.LLM.Offline()).
		Str("market", prompts.Market()).
		Bool("sentry", reporter.Enabled()).
		Msg("servicios inicializados")

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		AIUC:     aiUC,
		Logger:   log,
		Reporter: reporter,
		Docs:     cfg.Docs,
	})
	return &App{Fiber: app, Reporter: reporter}, nil
}
