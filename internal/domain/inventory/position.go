// Package inventory contiene los cálculos puros de posición de inventario:
// disponibilidad, clasificación de salud de stock y validación de reservas.
// Toda pantalla o ajuste que muestre disponible debe pasar por aquí para que
// el cálculo sea idéntico en todo el sistema.
package inventory

import (
	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/shopspring/decimal"
)

// Estados de salud de stock.
const (
	StatusOutOfStock = "OUT_OF_STOCK"
	StatusLowStock   = "LOW_STOCK"
	StatusInStock    = "IN_STOCK"
)

// ComputeAvailable deriva la cantidad disponible: stock - reservado.
// Precondición: reservado <= stock (la ruta de escritura ya lo validó con
// ValidateReservationChange); aquí no se revalida para mantenerlo como
// cálculo puro de presentación.
func ComputeAvailable(stockQuantity, reservedQuantity decimal.Decimal) decimal.Decimal {
	return stockQuantity.Sub(reservedQuantity)
}

// ClassifyStockStatus clasifica la disponibilidad. Función total: definida
// para cualquier combinación de entrada, incluido reorderLevel ausente.
//
//	OUT_OF_STOCK  si disponible <= 0 (sin importar el punto de reorden)
//	LOW_STOCK     si hay punto de reorden y 0 < disponible <= reorden
//	IN_STOCK      en cualquier otro caso
func ClassifyStockStatus(available decimal.Decimal, reorderLevel *decimal.Decimal) string {
	if !available.IsPositive() {
		return StatusOutOfStock
	}
	if reorderLevel != nil && available.LessThanOrEqual(*reorderLevel) {
		return StatusLowStock
	}
	return StatusInStock
}

// ValidateReservationChange valida un cambio de reserva (delta con signo)
// sobre la posición actual y devuelve la nueva cantidad reservada.
// La violación del invariante 0 <= reservado <= stock es un error de
// validación, nunca un recorte silencioso.
func ValidateReservationChange(stockQuantity, reservedQuantity, delta decimal.Decimal) (decimal.Decimal, error) {
	newReserved := reservedQuantity.Add(delta)
	if newReserved.GreaterThan(stockQuantity) {
		return decimal.Zero, domain.ErrReservaExcedeStock
	}
	if newReserved.IsNegative() {
		return decimal.Zero, domain.ErrReservaNegativa
	}
	return newReserved, nil
}

// ValidateStockChange valida un ajuste de stock (delta con signo): el stock
// resultante no puede ser negativo ni quedar por debajo de lo ya reservado.
func ValidateStockChange(stockQuantity, reservedQuantity, delta decimal.Decimal) (decimal.Decimal, error) {
	newStock := stockQuantity.Add(delta)
	if newStock.IsNegative() {
		return decimal.Zero, domain.ErrStockInsuficiente
	}
	if reservedQuantity.GreaterThan(newStock) {
		return decimal.Zero, domain.ErrReservaExcedeStock
	}
	return newStock, nil
}
