// Command lambda sirve la misma API detrás de API Gateway (eventos proxy REST).
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"

	"github.com/jhoicas/tote-api/internal/bootstrap"
	"github.com/jhoicas/tote-api/internal/infrastructure/tracking"
	"github.com/jhoicas/tote-api/pkg/config"
	"github.com/jhoicas/tote-api/pkg/logger"
)

var (
	adapter  *fiberadapter.FiberLambda
	reporter *tracking.SentryReporter
)

// El cold start arma la aplicación una sola vez; las invocaciones la reutilizan.
func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})

	app, err := bootstrap.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar aplicación")
	}
	adapter = fiberadapter.New(app.Fiber)
	reporter = app.Reporter
	log.Info().Msg("handler lambda listo")
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// El proceso puede congelarse al terminar la invocación.
	defer reporter.Flush()
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
