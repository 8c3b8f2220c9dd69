package ports

import (
	"context"
)

// Role rol de un mensaje dentro de la conversación enviada al modelo.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message mensaje de la conversación.
type Message struct {
	Role    Role
	Content string
}

// OutputSchema describe el objeto estructurado que se espera del modelo.
// Name identifica el esquema (lo usan los adaptadores para logs y respuestas fijas);
// JSONSchema se envía al modelo como instrucción de formato.
type OutputSchema struct {
	Name       string
	JSONSchema map[string]any
}

// CompletionRequest petición de completado estructurado.
type CompletionRequest struct {
	Model    string
	Messages []Message
	Schema   OutputSchema
}

// LLMService define el puerto de salida hacia el proveedor de modelos de lenguaje.
// Cualquier adaptador (Groq, Anthropic, respuestas fijas) debe implementar esta interfaz;
// la capa de aplicación solo conoce este contrato.
type LLMService interface {
	// CompleteStructured envía la conversación y decodifica la respuesta del modelo en target
	// (puntero a struct). Si la respuesta no cumple el esquema el adaptador puede volver a
	// consultar según su propia política; si se agotan los intentos devuelve error.
	CompleteStructured(ctx context.Context, req CompletionRequest, target any) error
}
