package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear una referencia textil.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=50"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	UnitMeasure string          `json:"unit_measure"` // metro, unidad, kilo, rollo
	Attributes  json.RawMessage `json:"attributes"`   // composición, color, talla...
}

// UpdateProductRequest entrada para actualizar (campos opcionales).
type UpdateProductRequest struct {
	Name        *string         `json:"name" validate:"omitempty,min=1,max=200"`
	Reference   *string         `json:"reference"`
	Description *string         `json:"description"`
	UnitMeasure *string         `json:"unit_measure"`
	Attributes  json.RawMessage `json:"attributes"`
}

// ProductResponse salida de una referencia.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	UnitMeasure string          `json:"unit_measure"`
	Attributes  json.RawMessage `json:"attributes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
