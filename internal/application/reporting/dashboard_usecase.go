// Package reporting contiene los casos de uso de solo lectura: dashboard
// operativo, reporte PDF del libro de caja y exportación contable XML.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/textil-erp/internal/application/dto"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase genera el resumen operativo del día y del mes en curso.
//
// Fuente de datos: ReportingRepository (consultas read-only).
// No toca las tablas de asientos directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	reportingRepo repository.ReportingRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportingRepo repository.ReportingRepository) *DashboardUseCase {
	return &DashboardUseCase{reportingRepo: reportingRepo}
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
//
// Cuatro llamadas en paralelo:
//  1. GetPettyCashFlow(hoy)  → TodayReplenishments + TodayDisbursements
//  2. GetPettyCashFlow(mes)  → MonthReplenishments + MonthDisbursements
//  3. CountStockHealth       → OutOfStock/LowStock/InStock
//  4. CountLowBalanceAccounts → LowBalanceAccounts
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	companyID string,
) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Rangos de fecha (intervalos semiabiertos [inicio, fin)) ───────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24 * time.Hour)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	// ── Goroutines para paralelizar las 4 consultas DB ────────────────────────
	type flowResult struct {
		replenishments decimal.Decimal
		disbursements  decimal.Decimal
		err            error
	}
	type healthResult struct {
		counts repository.StockHealthCount
		err    error
	}
	type lowBalanceResult struct {
		count int
		err   error
	}

	todayCh := make(chan flowResult, 1)
	monthCh := make(chan flowResult, 1)
	healthCh := make(chan healthResult, 1)
	lowCh := make(chan lowBalanceResult, 1)

	go func() {
		rep, dis, err := uc.reportingRepo.GetPettyCashFlow(ctx, companyID, todayStart, todayEnd)
		todayCh <- flowResult{rep, dis, err}
	}()
	go func() {
		rep, dis, err := uc.reportingRepo.GetPettyCashFlow(ctx, companyID, monthStart, monthEnd)
		monthCh <- flowResult{rep, dis, err}
	}()
	go func() {
		counts, err := uc.reportingRepo.CountStockHealth(ctx, companyID)
		healthCh <- healthResult{counts, err}
	}()
	go func() {
		count, err := uc.reportingRepo.CountLowBalanceAccounts(ctx, companyID)
		lowCh <- lowBalanceResult{count, err}
	}()

	today := <-todayCh
	month := <-monthCh
	health := <-healthCh
	low := <-lowCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: flujo de caja de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: flujo de caja del mes: %w", month.err)
	}
	if health.err != nil {
		return nil, fmt.Errorf("dashboard: salud de inventario: %w", health.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: cajas con saldo bajo: %w", low.err)
	}

	return &dto.DashboardSummaryDTO{
		TodayReplenishments: today.replenishments.Round(2),
		TodayDisbursements:  today.disbursements.Round(2),
		MonthReplenishments: month.replenishments.Round(2),
		MonthDisbursements:  month.disbursements.Round(2),
		LowBalanceAccounts:  low.count,
		OutOfStockCount:     health.counts.OutOfStock,
		LowStockCount:       health.counts.LowStock,
		InStockCount:        health.counts.InStock,
	}, nil
}
