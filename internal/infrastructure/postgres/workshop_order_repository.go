package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.WorkshopOrderRepository = (*WorkshopOrderRepository)(nil)

// WorkshopOrderRepository implementa el puerto sobre PostgreSQL.
type WorkshopOrderRepository struct {
	pool *pgxpool.Pool
}

// NewWorkshopOrderRepository construye el repositorio.
func NewWorkshopOrderRepository(pool *pgxpool.Pool) *WorkshopOrderRepository {
	return &WorkshopOrderRepository{pool: pool}
}

const workshopOrderColumns = `id, product_id, quantity, total_order_value, material_cost, wood_cost, other_costs, date, notes, created_by`

// Create inserta el pedido y asigna el ID y la fecha generados.
func (r *WorkshopOrderRepository) Create(order *entity.WorkshopOrder) error {
	query := `
		INSERT INTO workshop_orders (product_id, quantity, total_order_value, material_cost, wood_cost, other_costs, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, date`

	err := r.pool.QueryRow(context.Background(), query,
		order.ProductID, order.Quantity, order.TotalOrderValue,
		order.MaterialCost, order.WoodCost, order.OtherCosts,
		order.Notes, order.CreatedBy,
	).Scan(&order.ID, &order.Date)
	if err != nil {
		return fmt.Errorf("insertar pedido: %w", err)
	}
	return nil
}

// GetByID devuelve el pedido o (nil, nil) si no existe.
func (r *WorkshopOrderRepository) GetByID(id int64) (*entity.WorkshopOrder, error) {
	query := `SELECT ` + workshopOrderColumns + ` FROM workshop_orders WHERE id = $1`

	var o entity.WorkshopOrder
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProductID, &o.Quantity, &o.TotalOrderValue,
		&o.MaterialCost, &o.WoodCost, &o.OtherCosts, &o.Date, &o.Notes, &o.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// List devuelve todos los pedidos, los más recientes primero.
func (r *WorkshopOrderRepository) List() ([]*entity.WorkshopOrder, error) {
	query := `SELECT ` + workshopOrderColumns + ` FROM workshop_orders ORDER BY date DESC, id DESC`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	defer rows.Close()

	var orders []*entity.WorkshopOrder
	for rows.Next() {
		var o entity.WorkshopOrder
		if err := rows.Scan(&o.ID, &o.ProductID, &o.Quantity, &o.TotalOrderValue,
			&o.MaterialCost, &o.WoodCost, &o.OtherCosts, &o.Date, &o.Notes, &o.CreatedBy); err != nil {
			return nil, fmt.Errorf("escanear pedido: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// Update escribe todos los campos editables del pedido.
func (r *WorkshopOrderRepository) Update(order *entity.WorkshopOrder) error {
	query := `
		UPDATE workshop_orders
		SET product_id = $1, quantity = $2, total_order_value = $3, material_cost = $4,
		    wood_cost = $5, other_costs = $6, date = $7, notes = $8
		WHERE id = $9`

	tag, err := r.pool.Exec(context.Background(), query,
		order.ProductID, order.Quantity, order.TotalOrderValue,
		order.MaterialCost, order.WoodCost, order.OtherCosts,
		order.Date, order.Notes, order.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("actualizar pedido: pedido %d no existe", order.ID)
	}
	return nil
}

// Delete elimina el pedido.
func (r *WorkshopOrderRepository) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM workshop_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar pedido: %w", err)
	}
	return nil
}
