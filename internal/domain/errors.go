package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrFormClosed          = errors.New("el formulario no está abierto")
	ErrEditLocked          = errors.New("las filas de un lote existente no se pueden agregar ni quitar")
	ErrUnknownConfirmation = errors.New("confirmación desconocida o ya utilizada")
	ErrRowOutOfRange       = errors.New("índice de fila fuera de rango")
)
