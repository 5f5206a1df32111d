package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductMetrics agregados de inventario para el dashboard.
type ProductMetrics struct {
	TotalProducts   int64
	TotalStock      int64
	TotalStockValue decimal.Decimal
	LowStockCount   int64
}

// CashflowTotals ingresos y gastos acumulados.
type CashflowTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// AnalyticsRepository define consultas de solo lectura para el dashboard (DIP).
type AnalyticsRepository interface {
	GetProductMetrics(ctx context.Context) (ProductMetrics, error)
	GetCashflowTotals(ctx context.Context) (CashflowTotals, error)
}
