package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/tote-api/internal/application/ports"
	"github.com/jhoicas/tote-api/internal/domain"
	"github.com/jhoicas/tote-api/pkg/logger"
)

// validate es seguro para uso concurrente y cachea la metadata de cada struct.
var validate = validator.New()

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// roundTrip es una única llamada al proveedor: instrucción de sistema + conversación -> texto.
type roundTrip func(ctx context.Context, system string, messages []ports.Message) (string, error)

// completeStructured ejecuta el ciclo de completado estructurado común a todos los adaptadores:
// pide la respuesta, la decodifica y valida contra target, y ante un desajuste vuelve a
// consultar incluyendo el error, hasta maxRetries veces. Los errores del proveedor
// (red, autenticación) no se reintentan aquí.
func completeStructured(
	ctx context.Context,
	log *logger.Logger,
	req ports.CompletionRequest,
	target any,
	maxRetries int,
	send roundTrip,
) error {
	if len(req.Messages) == 0 {
		return fmt.Errorf("AI: %w: conversación vacía", domain.ErrInvalidInput)
	}
	system, err := schemaInstruction(req.Schema)
	if err != nil {
		return err
	}

	messages := make([]ports.Message, 0, len(req.Messages)+2*maxRetries)
	messages = append(messages, req.Messages...)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		log.Debug().
			Str("schema", req.Schema.Name).
			Str("model", req.Model).
			Int("attempt", attempt+1).
			Str("prompt", messages[len(messages)-1].Content).
			Msg("llamando al proveedor de IA")

		text, err := send(ctx, system, messages)
		if err != nil {
			return err
		}

		if err := decodeStructured(text, target); err != nil {
			lastErr = err
			log.Warn().
				Err(err).
				Str("schema", req.Schema.Name).
				Int("attempt", attempt+1).
				Msg("respuesta del modelo no cumple el esquema")
			messages = append(messages,
				ports.Message{Role: ports.RoleAssistant, Content: text},
				ports.Message{Role: ports.RoleUser, Content: fmt.Sprintf(
					"The previous answer did not match the JSON schema. Fix the errors and answer again with only the JSON object:\n%s", err)},
			)
			continue
		}
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrSchemaMismatch, lastErr)
}

// schemaInstruction arma la instrucción de sistema con el JSON Schema esperado.
func schemaInstruction(schema ports.OutputSchema) (string, error) {
	raw, err := json.MarshalIndent(schema.JSONSchema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("AI: serializar esquema %s: %w", schema.Name, err)
	}
	return fmt.Sprintf(`Extract the answer as a %s object.
Respond ONLY with a valid JSON object (no markdown, no extra text) that matches this JSON schema:
%s
Return an instance of the schema, not the schema itself.`, schema.Name, raw), nil
}

// decodeStructured decodifica el texto del modelo en target y valida los campos obligatorios.
// target solo se modifica si la decodificación y la validación tienen éxito.
func decodeStructured(text string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("AI: target debe ser un puntero no nulo, recibido %T", target)
	}

	cleanJSON := extractJSON(text)
	if cleanJSON == "" {
		return domain.ErrEmptyCompletion
	}

	fresh := reflect.New(rv.Elem().Type())
	dec := json.NewDecoder(bytes.NewReader([]byte(cleanJSON)))
	if err := dec.Decode(fresh.Interface()); err != nil {
		return fmt.Errorf("JSON inválido: %w", err)
	}
	if fresh.Elem().Kind() == reflect.Struct {
		if err := validate.Struct(fresh.Interface()); err != nil {
			return fmt.Errorf("validación: %w", err)
		}
	}

	rv.Elem().Set(fresh.Elem())
	return nil
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
