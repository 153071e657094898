package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los resultados de negocio esperados (sin bodega origen apta, cantidad
// trasladable nula) NO son errores: se modelan como variantes de resultado
// en el coordinador.
var (
	ErrValidation           = errors.New("traslado inválido")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrTransferNotFound     = errors.New("traslado no encontrado")
	ErrInvalidTransferState = errors.New("estado de traslado inválido para la operación")
)
