package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ReportingRepository = (*ReportingRepo)(nil)

// ReportingRepo consultas de solo lectura para el dashboard operativo.
type ReportingRepo struct {
	pool *pgxpool.Pool
}

// NewReportingRepository construye el adaptador de reportes.
func NewReportingRepository(pool *pgxpool.Pool) *ReportingRepo {
	return &ReportingRepo{pool: pool}
}

// GetPettyCashFlow suma reposiciones y egresos de todas las cajas de la empresa
// en [startDate, endDate). COALESCE devuelve cero si no hay movimientos.
func (r *ReportingRepo) GetPettyCashFlow(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
) (replenishments, disbursements decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(amount) FILTER (WHERE type = 'REPLENISHMENT'), 0) AS replenishments,
	    COALESCE(SUM(amount) FILTER (WHERE type = 'DISBURSEMENT'), 0)  AS disbursements
	FROM petty_cash_transactions
	WHERE company_id = $1
	  AND transaction_date >= $2
	  AND transaction_date <  $3`

	err = r.pool.QueryRow(ctx, query, companyID, startDate, endDate).
		Scan(&replenishments, &disbursements)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("petty cash flow: %w", err)
	}
	return replenishments, disbursements, nil
}

// CountStockHealth clasifica todas las posiciones de la empresa con la misma
// regla del dominio: disponible = stock - reservado; AGOTADO si <= 0, BAJO si
// hay punto de reorden y disponible <= reorden, EN STOCK en el resto.
func (r *ReportingRepo) CountStockHealth(ctx context.Context, companyID string) (repository.StockHealthCount, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE stock_quantity - reserved_quantity <= 0)                AS out_of_stock,
	    COUNT(*) FILTER (WHERE stock_quantity - reserved_quantity > 0
	                       AND reorder_level IS NOT NULL
	                       AND stock_quantity - reserved_quantity <= reorder_level)    AS low_stock,
	    COUNT(*) FILTER (WHERE stock_quantity - reserved_quantity > 0
	                       AND (reorder_level IS NULL
	                            OR stock_quantity - reserved_quantity > reorder_level)) AS in_stock
	FROM location_inventory
	WHERE company_id = $1`

	var counts repository.StockHealthCount
	err := r.pool.QueryRow(ctx, query, companyID).
		Scan(&counts.OutOfStock, &counts.LowStock, &counts.InStock)
	if err != nil {
		return repository.StockHealthCount{}, fmt.Errorf("stock health: %w", err)
	}
	return counts, nil
}

// CountLowBalanceAccounts cuenta las cajas activas con saldo por debajo de su
// mínimo configurado (misma comparación estricta del dominio).
func (r *ReportingRepo) CountLowBalanceAccounts(ctx context.Context, companyID string) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM petty_cash_accounts
	WHERE company_id = $1
	  AND is_active = true
	  AND min_balance IS NOT NULL
	  AND current_balance < min_balance`

	var count int
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("low balance accounts: %w", err)
	}
	return count, nil
}
