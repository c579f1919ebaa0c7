package repository

import "github.com/jhoicas/textil-erp/internal/domain/entity"

// StockMovementRepository persistencia del rastro de movimientos de stock.
// Los movimientos son inmutables: solo alta y consulta.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByInventory(companyID, inventoryID string, limit, offset int) ([]*entity.StockMovement, error)
}
