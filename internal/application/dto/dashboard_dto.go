package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resumen de inventario y caja para la pantalla principal.
type DashboardStatsDTO struct {
	TotalProducts   int64           `json:"total_products"`
	TotalStock      int64           `json:"total_stock"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	LowStockCount   int64           `json:"low_stock_count"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	NetBalance      decimal.Decimal `json:"net_balance"`
	InitialCapital  decimal.Decimal `json:"initial_capital"`
	CurrentCapital  decimal.Decimal `json:"current_capital"`
}
