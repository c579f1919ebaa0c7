package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen operativo para la pantalla principal:
// flujo de caja menor de hoy y del mes, más la salud del inventario.
type DashboardSummaryDTO struct {
	TodayReplenishments decimal.Decimal `json:"today_replenishments"`
	TodayDisbursements  decimal.Decimal `json:"today_disbursements"`
	MonthReplenishments decimal.Decimal `json:"month_replenishments"`
	MonthDisbursements  decimal.Decimal `json:"month_disbursements"`
	LowBalanceAccounts  int             `json:"low_balance_accounts"`
	OutOfStockCount     int             `json:"out_of_stock_count"`
	LowStockCount       int             `json:"low_stock_count"`
	InStockCount        int             `json:"in_stock_count"`
}
