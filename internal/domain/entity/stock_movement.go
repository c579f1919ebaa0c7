package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "IN"  // entrada (delta positivo)
	MovementTypeOut = "OUT" // salida (delta negativo)
)

// StockMovement es el rastro de auditoría de los ajustes de stock de una
// posición de inventario. Cada ajuste deja exactamente un movimiento con el
// delta aplicado; los movimientos nunca se editan ni se borran.
type StockMovement struct {
	ID          string
	CompanyID   string
	InventoryID string
	ProductID   string
	LocationID  string
	Type        string           // IN | OUT
	Quantity    decimal.Decimal  // delta con signo tal como se aplicó
	UnitCost    *decimal.Decimal // solo entradas con costo conocido
	Notes       string
	CreatedAt   time.Time
	CreatedBy   string // UserID del token; vacío en procesos internos
}
