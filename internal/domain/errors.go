package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrExportFailed = errors.New("exportación fallida")
)
