package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)

// Umbral de stock bajo del dashboard.
const lowStockThreshold = 10

// AnalyticsRepository resuelve los agregados del dashboard con SQL en vez de
// traer las tablas completas a memoria.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el repositorio.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// GetProductMetrics devuelve conteos y valuación del inventario.
func (r *AnalyticsRepository) GetProductMetrics(ctx context.Context) (repository.ProductMetrics, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(stock), 0),
			COALESCE(SUM(estimated_price * stock), 0),
			COUNT(*) FILTER (WHERE stock < $1)
		FROM products`

	var m repository.ProductMetrics
	err := r.pool.QueryRow(ctx, query, lowStockThreshold).
		Scan(&m.TotalProducts, &m.TotalStock, &m.TotalStockValue, &m.LowStockCount)
	if err != nil {
		return repository.ProductMetrics{}, fmt.Errorf("métricas de productos: %w", err)
	}
	return m, nil
}

// GetCashflowTotals devuelve los ingresos y gastos acumulados.
func (r *AnalyticsRepository) GetCashflowTotals(ctx context.Context) (repository.CashflowTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM cashflows`

	var t repository.CashflowTotals
	err := r.pool.QueryRow(ctx, query).Scan(&t.TotalIncome, &t.TotalExpense)
	if err != nil {
		return repository.CashflowTotals{}, fmt.Errorf("totales de caja: %w", err)
	}
	return t, nil
}
