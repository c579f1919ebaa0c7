package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, company_id, inventory_id, product_id, location_id,
	type, quantity, unit_cost, notes, created_at, created_by`

// StockMovementRepo persiste el rastro de movimientos de stock.
// La tabla es de solo inserción: no hay Update ni Delete.
type StockMovementRepo struct {
	db Querier
}

// NewStockMovementRepository crea el repositorio (acepta pool o tx).
func NewStockMovementRepository(db Querier) *StockMovementRepo {
	return &StockMovementRepo{db: db}
}

// Create inserta un movimiento.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	ctx := context.Background()
	var createdBy *string
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO stock_movements (id, company_id, inventory_id, product_id, location_id,
			type, quantity, unit_cost, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, m.CompanyID, m.InventoryID, m.ProductID, m.LocationID,
		m.Type, m.Quantity, m.UnitCost, m.Notes, m.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByInventory lista los movimientos de una posición, más recientes primero.
func (r *StockMovementRepo) ListByInventory(companyID, inventoryID string, limit, offset int) ([]*entity.StockMovement, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, `
		SELECT `+movementColumns+`
		FROM stock_movements
		WHERE company_id = $1 AND inventory_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		companyID, inventoryID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(
			&m.ID, &m.CompanyID, &m.InventoryID, &m.ProductID, &m.LocationID,
			&m.Type, &m.Quantity, &m.UnitCost, &m.Notes, &m.CreatedAt, &createdBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
