package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para registrar una posición de inventario.
type CreateInventoryRequest struct {
	ProductID     string           `json:"product_id" validate:"required,uuid"`
	LocationID    string           `json:"location_id" validate:"required,uuid"`
	StockQuantity decimal.Decimal  `json:"stock_quantity"`
	ReorderLevel  *decimal.Decimal `json:"reorder_level,omitempty"`
}

// AdjustStockRequest body para ajustar stock (delta con signo).
// UnitCost opcional: en entradas positivas recalcula el costo promedio del producto.
type AdjustStockRequest struct {
	Delta    decimal.Decimal  `json:"delta"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"`
	Notes    string           `json:"notes,omitempty"`
}

// ChangeReservationRequest body para reservar o liberar stock (delta con signo).
type ChangeReservationRequest struct {
	Delta decimal.Decimal `json:"delta"`
	Notes string          `json:"notes,omitempty"`
}

// InventoryPositionResponse posición enriquecida con el disponible derivado y
// la clasificación de salud de stock. Available nunca viene de la DB: se
// recalcula siempre como stock - reservado.
type InventoryPositionResponse struct {
	ID                string           `json:"id"`
	ProductID         string           `json:"product_id"`
	ProductSKU        string           `json:"product_sku,omitempty"`
	ProductName       string           `json:"product_name,omitempty"`
	LocationID        string           `json:"location_id"`
	LocationName      string           `json:"location_name,omitempty"`
	StockQuantity     decimal.Decimal  `json:"stock_quantity"`
	ReservedQuantity  decimal.Decimal  `json:"reserved_quantity"`
	AvailableQuantity decimal.Decimal  `json:"available_quantity"`
	ReorderLevel      *decimal.Decimal `json:"reorder_level,omitempty"`
	StockStatus       string           `json:"stock_status"` // OUT_OF_STOCK | LOW_STOCK | IN_STOCK
	UpdatedAt         time.Time        `json:"updated_at"`
}

// StockMovementResponse movimiento del rastro de auditoría de una posición.
type StockMovementResponse struct {
	ID          string           `json:"id"`
	InventoryID string           `json:"inventory_id"`
	ProductID   string           `json:"product_id"`
	LocationID  string           `json:"location_id"`
	Type        string           `json:"type"` // IN | OUT
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	CreatedBy   string           `json:"created_by,omitempty"`
}

// InventoryListResponse lista paginada de posiciones.
type InventoryListResponse struct {
	Items []InventoryPositionResponse `json:"items"`
	Page  PageResponse                `json:"page"`
}
