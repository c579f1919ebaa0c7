package entity

import "time"

// Location representa una sede o bodega de la empresa (planta, punto de venta, bodega de insumos).
type Location struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	IsHQ      bool // sede principal
	IsDefault bool // ubicación por defecto para nuevos registros de inventario
	CreatedAt time.Time
	UpdatedAt time.Time
}
