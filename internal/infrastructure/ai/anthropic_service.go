package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jhoicas/tote-api/internal/application/ports"
	"github.com/jhoicas/tote-api/internal/domain"
	"github.com/jhoicas/tote-api/pkg/logger"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const anthropicMaxTokens = 1024

// AnthropicConfig parámetros del adaptador Anthropic.
type AnthropicConfig struct {
	APIKey     string
	Model      string // ej. "claude-3-5-haiku-latest"
	BaseURL    string // opcional
	MaxRetries int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// AnthropicService adaptador que implementa LLMService usando la API de Anthropic (Claude).
// Usa siempre su propio modelo configurado: el identificador de req.Model es de Groq.
type AnthropicService struct {
	client     anthropic.Client
	model      string
	maxRetries int
	log        *logger.Logger
}

// NewAnthropicService construye el adaptador.
func NewAnthropicService(cfg AnthropicConfig, log *logger.Logger) *AnthropicService {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return &AnthropicService{
		client:     anthropic.NewClient(opts...),
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		log:        log,
	}
}

// CompleteStructured envía la conversación a Claude y decodifica el JSON de la respuesta en target.
func (s *AnthropicService) CompleteStructured(ctx context.Context, req ports.CompletionRequest, target any) error {
	req.Model = s.model
	return completeStructured(ctx, s.log, req, target, s.maxRetries, func(ctx context.Context, system string, messages []ports.Message) (string, error) {
		params := anthropic.MessageNewParams{
			Model:     anthropic.Model(s.model),
			MaxTokens: anthropicMaxTokens,
			System:    []anthropic.TextBlockParam{{Text: system}},
			Messages:  toAnthropicMessages(messages),
		}
		// Los mensajes de sistema de la conversación se suman a la instrucción de sistema.
		for _, m := range messages {
			if m.Role == ports.RoleSystem {
				params.System = append(params.System, anthropic.TextBlockParam{Text: m.Content})
			}
		}

		resp, err := s.client.Messages.New(ctx, params)
		if err != nil {
			if ctx.Err() != nil {
				return "", fmt.Errorf("AI: Anthropic timeout o cancelación: %w", ctx.Err())
			}
			return "", fmt.Errorf("AI: Anthropic: %w", err)
		}

		var sb strings.Builder
		for _, block := range resp.Content {
			if block.Type == "text" {
				sb.WriteString(block.Text)
			}
		}
		if sb.Len() == 0 {
			return "", fmt.Errorf("AI: Anthropic: %w", domain.ErrEmptyCompletion)
		}
		return sb.String(), nil
	})
}

func toAnthropicMessages(messages []ports.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case ports.RoleSystem:
			continue
		case ports.RoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return out
}
