package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

// StockMovementRepository implementa el ledger append-only sobre PostgreSQL.
type StockMovementRepository struct {
	q Querier
}

// NewStockMovementRepository construye el repositorio.
func NewStockMovementRepository(q Querier) *StockMovementRepository {
	return &StockMovementRepository{q: q}
}

const movementColumns = `id, product_id, type, quantity, reason, note, date, created_by`

// Create inserta el movimiento y asigna el ID y la fecha generados.
func (r *StockMovementRepository) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, type, quantity, reason, note, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date`

	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Type, movement.Quantity,
		movement.Reason, movement.Note, movement.CreatedBy,
	).Scan(&movement.ID, &movement.Date)
	if err != nil {
		return fmt.Errorf("insertar movimiento: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos, los más recientes primero.
func (r *StockMovementRepository) List() ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY date DESC, id DESC`
	return r.queryMovements(query)
}

// ListByProduct devuelve los movimientos de un producto, los más recientes primero.
func (r *StockMovementRepository) ListByProduct(productID int64) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE product_id = $1 ORDER BY date DESC, id DESC`
	return r.queryMovements(query, productID)
}

// SumDeltaByProduct suma los movimientos con signo (add positivo, subtract negativo).
func (r *StockMovementRepository) SumDeltaByProduct(productID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'subtract' THEN -quantity ELSE quantity END), 0)
		FROM stock_movements
		WHERE product_id = $1`

	var sum int
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sumar movimientos: %w", err)
	}
	return sum, nil
}

func (r *StockMovementRepository) queryMovements(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	defer rows.Close()

	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.Note, &m.Date, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("escanear movimiento: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}
