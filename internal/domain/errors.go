package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrEmptyCompletion = errors.New("el modelo devolvió una respuesta vacía")
	ErrSchemaMismatch  = errors.New("la respuesta del modelo no cumple el esquema esperado")
	ErrUnknownSchema   = errors.New("esquema de salida desconocido")
)
