package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocationInventory representa la posición de inventario de un producto en una ubicación.
// AvailableQuantity nunca se persiste: siempre se deriva como Stock - Reservado.
// Invariante: 0 <= ReservedQuantity <= StockQuantity.
type LocationInventory struct {
	ID               string
	CompanyID        string
	ProductID        string
	LocationID       string
	StockQuantity    decimal.Decimal
	ReservedQuantity decimal.Decimal
	ReorderLevel     *decimal.Decimal // opcional: punto de reorden
	UpdatedAt        time.Time
}
