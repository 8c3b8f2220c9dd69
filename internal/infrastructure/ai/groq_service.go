package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/jhoicas/tote-api/internal/application/ports"
	"github.com/jhoicas/tote-api/internal/domain"
	"github.com/jhoicas/tote-api/pkg/logger"
)

// Verificar en tiempo de compilación que GroqService implementa LLMService.
var _ ports.LLMService = (*GroqService)(nil)

// DefaultGroqBaseURL endpoint compatible con la API de OpenAI.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1/"

// GroqConfig parámetros del adaptador Groq.
type GroqConfig struct {
	APIKey     string
	BaseURL    string
	MaxRetries int           // reintentos ante respuestas fuera de esquema
	Timeout    time.Duration // 0 = timeout por defecto del SDK
	HTTPClient *http.Client  // opcional; en tests apunta a un httptest.Server
}

// GroqService adaptador que implementa LLMService sobre la API de Groq usando el SDK de OpenAI.
// El cliente se construye una vez y se comparte entre peticiones.
type GroqService struct {
	client     openai.Client
	maxRetries int
	log        *logger.Logger
}

// NewGroqService construye el adaptador.
func NewGroqService(cfg GroqConfig, log *logger.Logger) *GroqService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return &GroqService{
		client:     openai.NewClient(opts...),
		maxRetries: cfg.MaxRetries,
		log:        log,
	}
}

// CompleteStructured pide a Groq un objeto JSON (response_format json_object) y lo decodifica en target.
func (s *GroqService) CompleteStructured(ctx context.Context, req ports.CompletionRequest, target any) error {
	return completeStructured(ctx, s.log, req, target, s.maxRetries, func(ctx context.Context, system string, messages []ports.Message) (string, error) {
		params := openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(req.Model),
			Messages: toOpenAIMessages(system, messages),
			ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
			},
		}

		resp, err := s.client.Chat.Completions.New(ctx, params)
		if err != nil {
			if ctx.Err() != nil {
				return "", fmt.Errorf("AI: Groq timeout o cancelación: %w", ctx.Err())
			}
			return "", fmt.Errorf("AI: Groq: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("AI: Groq: %w", domain.ErrEmptyCompletion)
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})
}

func toOpenAIMessages(system string, messages []ports.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	out = append(out, openai.SystemMessage(system))
	for _, m := range messages {
		switch m.Role {
		case ports.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case ports.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
