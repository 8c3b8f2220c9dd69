package dto

// ErrorResponse cuerpo de error HTTP: un mensaje fijo por operación.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorItem describe un campo que no cumple el esquema de la petición.
type ValidationErrorItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse cuerpo de las respuestas 422.
type ValidationErrorResponse struct {
	Detail []ValidationErrorItem `json:"detail"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
