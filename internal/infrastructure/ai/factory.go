package ai

import (
	"github.com/jhoicas/tote-api/internal/application/ports"
	"github.com/jhoicas/tote-api/pkg/config"
	"github.com/jhoicas/tote-api/pkg/logger"
)

// NewLLMService elige el adaptador según la configuración. Sin credencial válida devuelve
// el adaptador de respuestas fijas en lugar de fallar al arrancar.
func NewLLMService(cfg config.LLMConfig, log *logger.Logger) ports.LLMService {
	if cfg.Offline() {
		log.Warn().
			Str("provider", cfg.Provider).
			Msg("sin credencial del proveedor de IA: se usan respuestas fijas")
		return NewCannedService(log)
	}

	switch cfg.Provider {
	case "anthropic":
		log.Info().Str("model", cfg.AnthropicModel).Msg("proveedor de IA: Anthropic")
		return NewAnthropicService(AnthropicConfig{
			APIKey:     cfg.AnthropicAPIKey,
			Model:      cfg.AnthropicModel,
			MaxRetries: cfg.MaxRetries,
			Timeout:    cfg.Timeout,
		}, log)
	default:
		log.Info().Str("base_url", cfg.GroqBaseURL).Msg("proveedor de IA: Groq")
		return NewGroqService(GroqConfig{
			APIKey:     cfg.GroqAPIKey,
			BaseURL:    cfg.GroqBaseURL,
			MaxRetries: cfg.MaxRetries,
			Timeout:    cfg.Timeout,
		}, log)
	}
}
