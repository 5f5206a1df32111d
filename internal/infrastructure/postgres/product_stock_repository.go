package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.ProductStockRepository = (*ProductStockRepository)(nil)

// ProductStockRepository implementa las entradas por ubicación sobre PostgreSQL.
type ProductStockRepository struct {
	q Querier
}

// NewProductStockRepository construye el repositorio.
func NewProductStockRepository(q Querier) *ProductStockRepository {
	return &ProductStockRepository{q: q}
}

const productStockColumns = `id, product_id, color, quantity, workshop, created_by`

// Create inserta la entrada y asigna el ID generado.
func (r *ProductStockRepository) Create(stock *entity.ProductStock) error {
	query := `
		INSERT INTO product_stock (product_id, color, quantity, workshop, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.q.QueryRow(context.Background(), query,
		stock.ProductID, stock.Color, stock.Quantity, stock.Workshop, stock.CreatedBy,
	).Scan(&stock.ID)
	if err != nil {
		return fmt.Errorf("insertar entrada de stock: %w", err)
	}
	return nil
}

// GetByID devuelve la entrada o (nil, nil) si no existe.
func (r *ProductStockRepository) GetByID(id int64) (*entity.ProductStock, error) {
	query := `SELECT ` + productStockColumns + ` FROM product_stock WHERE id = $1`

	var s entity.ProductStock
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&s.ID, &s.ProductID, &s.Color, &s.Quantity, &s.Workshop, &s.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// List devuelve todas las entradas.
func (r *ProductStockRepository) List() ([]*entity.ProductStock, error) {
	query := `SELECT ` + productStockColumns + ` FROM product_stock ORDER BY id`
	return r.queryEntries(query)
}

// ListByProduct devuelve las entradas de un producto.
func (r *ProductStockRepository) ListByProduct(productID int64) ([]*entity.ProductStock, error) {
	query := `SELECT ` + productStockColumns + ` FROM product_stock WHERE product_id = $1 ORDER BY id`
	return r.queryEntries(query, productID)
}

// Update escribe color, cantidad y taller. product_id nunca se toca.
func (r *ProductStockRepository) Update(stock *entity.ProductStock) error {
	query := `UPDATE product_stock SET color = $1, quantity = $2, workshop = $3 WHERE id = $4`

	tag, err := r.q.Exec(context.Background(), query, stock.Color, stock.Quantity, stock.Workshop, stock.ID)
	if err != nil {
		return fmt.Errorf("actualizar entrada de stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("actualizar entrada de stock: entrada %d no existe", stock.ID)
	}
	return nil
}

// Delete elimina la entrada.
func (r *ProductStockRepository) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar entrada de stock: %w", err)
	}
	return nil
}

// SumQuantityByProduct suma las cantidades de las entradas vigentes del producto.
func (r *ProductStockRepository) SumQuantityByProduct(productID int64) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM product_stock WHERE product_id = $1`

	var sum int
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sumar entradas de stock: %w", err)
	}
	return sum, nil
}

func (r *ProductStockRepository) queryEntries(query string, args ...any) ([]*entity.ProductStock, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar entradas de stock: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ProductStock
	for rows.Next() {
		var s entity.ProductStock
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Color, &s.Quantity, &s.Workshop, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("escanear entrada de stock: %w", err)
		}
		entries = append(entries, &s)
	}
	return entries, rows.Err()
}
