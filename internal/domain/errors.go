package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrPriceBelowCost     = errors.New("precio por debajo del costo de compra")
	ErrPriceBelowFloor    = errors.New("precio por debajo del precio mínimo de venta")
	ErrCustomerRequired   = errors.New("las ventas a crédito requieren un cliente")
	ErrPaymentExceedsDebt = errors.New("el pago excede la deuda del cliente")
	ErrInvalidQuantity    = errors.New("cantidad inválida para el tipo de unidad")
	ErrReasonRequired     = errors.New("la corrección de deuda requiere un motivo")
	ErrRateNotConfigured  = errors.New("tasa de cambio no configurada o no positiva")
)
