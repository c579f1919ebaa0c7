package repository

import "github.com/jhoicas/textil-erp/internal/domain/entity"

// InventoryFilters filtros de consulta para posiciones de inventario.
type InventoryFilters struct {
	LocationID string
	ProductID  string
	Limit      int
	Offset     int
}

// PositionRow fila cruda del listado de posiciones con los nombres ya unidos
// por la consulta (evita N+1 en el listado). El disponible NO viene aquí:
// siempre lo deriva el dominio.
type PositionRow struct {
	Inventory    entity.LocationInventory
	ProductSKU   string
	ProductName  string
	LocationName string
}

// LocationInventoryRepository define el puerto para consultar y actualizar la
// posición de inventario por producto+ubicación (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); se usa dentro de
// transacciones para que stock y reserva muten de forma atómica.
type LocationInventoryRepository interface {
	GetByID(id string) (*entity.LocationInventory, error)
	GetForUpdate(id string) (*entity.LocationInventory, error)
	Get(companyID, locationID, productID string) (*entity.LocationInventory, error)
	Create(inv *entity.LocationInventory) error
	Upsert(inv *entity.LocationInventory) error
	ListDetailed(companyID string, f InventoryFilters) ([]PositionRow, error)
	Delete(id string) error
}
