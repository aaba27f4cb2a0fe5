package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
)

// Variantes por entidad; errors.Is sigue resolviendo al error base.
var (
	ErrAdminNotFound    = fmt.Errorf("administrador no encontrado: %w", ErrNotFound)
	ErrRetailerNotFound = fmt.Errorf("retailer no encontrado: %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("producto no encontrado: %w", ErrNotFound)
	ErrInvoiceNotFound  = fmt.Errorf("factura no encontrada: %w", ErrNotFound)

	ErrEmptyUpdate       = fmt.Errorf("no hay campos para actualizar: %w", ErrInvalidInput)
	ErrNullField         = fmt.Errorf("un campo no puede ser null: %w", ErrInvalidInput)
	ErrAmountExceedsDue  = fmt.Errorf("el monto del pago excede el saldo pendiente: %w", ErrInvalidInput)
	ErrLineTotalMismatch = fmt.Errorf("el total de la línea no coincide con cantidad x precio: %w", ErrInvalidInput)
)
