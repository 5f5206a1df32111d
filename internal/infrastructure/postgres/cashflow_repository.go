package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.CashflowRepository = (*CashflowRepository)(nil)

// CashflowRepository implementa el puerto sobre PostgreSQL.
type CashflowRepository struct {
	pool *pgxpool.Pool
}

// NewCashflowRepository construye el repositorio.
func NewCashflowRepository(pool *pgxpool.Pool) *CashflowRepository {
	return &CashflowRepository{pool: pool}
}

// Create inserta la transacción y asigna el ID generado.
func (r *CashflowRepository) Create(cashflow *entity.Cashflow) error {
	query := `
		INSERT INTO cashflows (type, amount, category, description, date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.pool.QueryRow(context.Background(), query,
		cashflow.Type, cashflow.Amount, cashflow.Category,
		cashflow.Description, cashflow.Date, cashflow.CreatedBy,
	).Scan(&cashflow.ID)
	if err != nil {
		return fmt.Errorf("insertar transacción: %w", err)
	}
	return nil
}

// List devuelve todas las transacciones, las más recientes primero.
func (r *CashflowRepository) List() ([]*entity.Cashflow, error) {
	query := `
		SELECT id, type, amount, category, description, date, created_by
		FROM cashflows
		ORDER BY date DESC, id DESC`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar transacciones: %w", err)
	}
	defer rows.Close()

	var cashflows []*entity.Cashflow
	for rows.Next() {
		var c entity.Cashflow
		if err := rows.Scan(&c.ID, &c.Type, &c.Amount, &c.Category, &c.Description, &c.Date, &c.CreatedBy); err != nil {
			return nil, fmt.Errorf("escanear transacción: %w", err)
		}
		cashflows = append(cashflows, &c)
	}
	return cashflows, rows.Err()
}
