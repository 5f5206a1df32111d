// Package analytics contiene los casos de uso de agregación para el
// dashboard de la pantalla principal.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase genera el resumen de inventario y caja.
//
// Fuente de datos: AnalyticsRepository (consultas read-only en SQL) más la
// clave initial_capital de settings. No recorre entidades en memoria; los
// agregados se calculan en la base.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	settingRepo   repository.SettingRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, settingRepo repository.SettingRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, settingRepo: settingRepo}
}

// GetStats construye el DashboardStatsDTO.
//
// Tres llamadas en paralelo:
//  1. GetProductMetrics → totales de inventario y conteo de stock bajo
//  2. GetCashflowTotals → ingresos y gastos acumulados
//  3. Setting initial_capital → capital inicial (0 si no está configurado)
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type productsResult struct {
		metrics repository.ProductMetrics
		err     error
	}
	type cashflowResult struct {
		totals repository.CashflowTotals
		err    error
	}
	type capitalResult struct {
		capital decimal.Decimal
		err     error
	}

	productsCh := make(chan productsResult, 1)
	cashflowCh := make(chan cashflowResult, 1)
	capitalCh := make(chan capitalResult, 1)

	go func() {
		m, err := uc.analyticsRepo.GetProductMetrics(ctx)
		productsCh <- productsResult{m, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.GetCashflowTotals(ctx)
		cashflowCh <- cashflowResult{t, err}
	}()
	go func() {
		c, err := uc.initialCapital()
		capitalCh <- capitalResult{c, err}
	}()

	products := <-productsCh
	cashflow := <-cashflowCh
	capital := <-capitalCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de productos: %w", products.err)
	}
	if cashflow.err != nil {
		return nil, fmt.Errorf("dashboard: totales de caja: %w", cashflow.err)
	}
	if capital.err != nil {
		return nil, fmt.Errorf("dashboard: capital inicial: %w", capital.err)
	}

	netBalance := cashflow.totals.TotalIncome.Sub(cashflow.totals.TotalExpense)

	return &dto.DashboardStatsDTO{
		TotalProducts:   products.metrics.TotalProducts,
		TotalStock:      products.metrics.TotalStock,
		TotalStockValue: products.metrics.TotalStockValue.Round(2),
		LowStockCount:   products.metrics.LowStockCount,
		TotalIncome:     cashflow.totals.TotalIncome.Round(2),
		TotalExpense:    cashflow.totals.TotalExpense.Round(2),
		NetBalance:      netBalance.Round(2),
		InitialCapital:  capital.capital.Round(2),
		CurrentCapital:  capital.capital.Add(netBalance).Round(2),
	}, nil
}

// initialCapital lee la clave initial_capital; ausente o ilegible vale 0.
func (uc *DashboardUseCase) initialCapital() (decimal.Decimal, error) {
	setting, err := uc.settingRepo.Get(entity.SettingInitialCapital)
	if err != nil {
		return decimal.Zero, err
	}
	if setting == nil {
		return decimal.Zero, nil
	}
	capital, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return decimal.Zero, nil
	}
	return capital, nil
}
