package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

var _ repository.LocationInventoryRepository = (*LocationInventoryRepo)(nil)

// LocationInventoryRepo implementación sobre PostgreSQL (usable con pool o tx).
// El disponible nunca se persiste ni se calcula en SQL: lo deriva el dominio.
type LocationInventoryRepo struct {
	q Querier
}

// NewLocationInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationInventoryRepository(q Querier) *LocationInventoryRepo {
	return &LocationInventoryRepo{q: q}
}

const inventoryColumns = `id, company_id, product_id, location_id, stock_quantity, reserved_quantity, reorder_level, updated_at`

// GetByID obtiene una posición por ID.
func (r *LocationInventoryRepo) GetByID(id string) (*entity.LocationInventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM location_inventory WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene la posición y bloquea la fila (SELECT FOR UPDATE).
func (r *LocationInventoryRepo) GetForUpdate(id string) (*entity.LocationInventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM location_inventory WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// Get obtiene la posición por empresa, ubicación y producto.
func (r *LocationInventoryRepo) Get(companyID, locationID, productID string) (*entity.LocationInventory, error) {
	query := `SELECT ` + inventoryColumns + `
		FROM location_inventory
		WHERE company_id = $1 AND location_id = $2 AND product_id = $3`
	return r.scanOne(query, companyID, locationID, productID)
}

// Create persiste una nueva posición de inventario.
func (r *LocationInventoryRepo) Create(inv *entity.LocationInventory) error {
	query := `
		INSERT INTO location_inventory (id, company_id, product_id, location_id, stock_quantity, reserved_quantity, reorder_level, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.CompanyID, inv.ProductID, inv.LocationID,
		inv.StockQuantity, inv.ReservedQuantity, inv.ReorderLevel, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory position: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza la posición (por producto y ubicación).
func (r *LocationInventoryRepo) Upsert(inv *entity.LocationInventory) error {
	query := `
		INSERT INTO location_inventory (id, company_id, product_id, location_id, stock_quantity, reserved_quantity, reorder_level, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET stock_quantity = EXCLUDED.stock_quantity,
		              reserved_quantity = EXCLUDED.reserved_quantity,
		              reorder_level = EXCLUDED.reorder_level,
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.CompanyID, inv.ProductID, inv.LocationID,
		inv.StockQuantity, inv.ReservedQuantity, inv.ReorderLevel,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory position: %w", err)
	}
	return nil
}

// ListDetailed devuelve las posiciones con nombres de producto y sede ya unidos
// (evita N+1 en el listado).
func (r *LocationInventoryRepo) ListDetailed(companyID string, f repository.InventoryFilters) ([]repository.PositionRow, error) {
	query := `
		SELECT li.id, li.company_id, li.product_id, li.location_id,
		       li.stock_quantity, li.reserved_quantity, li.reorder_level, li.updated_at,
		       p.sku, p.name, l.name
		FROM location_inventory li
		JOIN products p ON p.id = li.product_id
		JOIN locations l ON l.id = li.location_id
		WHERE li.company_id = $1
		  AND ($2 = '' OR li.location_id::text = $2)
		  AND ($3 = '' OR li.product_id::text = $3)
		ORDER BY l.name, p.sku
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		companyID, f.LocationID, f.ProductID, f.Limit, f.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list inventory positions: %w", err)
	}
	defer rows.Close()

	var list []repository.PositionRow
	for rows.Next() {
		var row repository.PositionRow
		inv := &row.Inventory
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.ProductID, &inv.LocationID,
			&inv.StockQuantity, &inv.ReservedQuantity, &inv.ReorderLevel, &inv.UpdatedAt,
			&row.ProductSKU, &row.ProductName, &row.LocationName,
		); err != nil {
			return nil, fmt.Errorf("scan inventory position: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Delete elimina una posición por ID.
func (r *LocationInventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM location_inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory position: %w", err)
	}
	return nil
}

func (r *LocationInventoryRepo) scanOne(query string, args ...any) (*entity.LocationInventory, error) {
	var inv entity.LocationInventory
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.CompanyID, &inv.ProductID, &inv.LocationID,
		&inv.StockQuantity, &inv.ReservedQuantity, &inv.ReorderLevel, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory position: %w", err)
	}
	return &inv, nil
}
