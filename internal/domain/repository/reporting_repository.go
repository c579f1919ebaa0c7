package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockHealthCount conteo de posiciones por estado de salud de stock.
type StockHealthCount struct {
	OutOfStock int
	LowStock   int
	InStock    int
}

// ReportingRepository define las consultas de solo lectura para el dashboard.
// Las implementaciones no modifican datos.
type ReportingRepository interface {
	// GetPettyCashFlow devuelve el total de reposiciones y egresos de todas
	// las cajas de la empresa en [startDate, endDate). Usa COALESCE para
	// devolver cero si no hay movimientos en el período.
	GetPettyCashFlow(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
	) (replenishments, disbursements decimal.Decimal, err error)

	// CountStockHealth clasifica todas las posiciones de inventario de la
	// empresa con la misma regla del dominio (disponible vs punto de reorden).
	CountStockHealth(ctx context.Context, companyID string) (StockHealthCount, error)

	// CountLowBalanceAccounts cuenta las cajas activas con saldo por debajo
	// de su mínimo configurado.
	CountLowBalanceAccounts(ctx context.Context, companyID string) (int, error)
}
