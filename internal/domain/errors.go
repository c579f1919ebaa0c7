package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Caja menor
	ErrMontoInvalido     = errors.New("monto inválido")
	ErrSaldoInsuficiente = errors.New("saldo insuficiente en la caja")
	ErrCuentaInactiva    = errors.New("la caja menor está inactiva")
	ErrSuperaTope        = errors.New("la reposición supera el tope de la caja y requiere confirmación")

	// Inventario por ubicación
	ErrReservaExcedeStock = errors.New("la reserva excede el stock disponible")
	ErrReservaNegativa    = errors.New("la reserva no puede ser negativa")
	ErrStockInsuficiente  = errors.New("stock insuficiente")
)
