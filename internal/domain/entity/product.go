package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una referencia textil del catálogo (tela, insumo o prenda terminada).
// El stock por ubicación se maneja en LocationInventory, nunca aquí.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Reference   string // referencia interna de la prenda/tela
	Description string
	CostPrice   decimal.Decimal // costo unitario de compra o producción
	UnitMeasure string          // metro, unidad, kilo, rollo
	Attributes  json.RawMessage // composición, color, talla, gramaje...
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
