package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementa el puerto sobre PostgreSQL. Acepta un Querier
// para poder operar igual sobre el pool o dentro de una transacción.
type ProductRepository struct {
	q Querier
}

// NewProductRepository construye el repositorio.
func NewProductRepository(q Querier) *ProductRepository {
	return &ProductRepository{q: q}
}

const productColumns = `id, name, category, estimated_price, stock, image_url, created_by, modified_by`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.EstimatedPrice, &p.Stock, &p.ImageURL, &p.CreatedBy, &p.ModifiedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create inserta el producto y asigna el ID generado.
func (r *ProductRepository) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, category, estimated_price, stock, image_url, created_by, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Category, product.EstimatedPrice, product.Stock,
		product.ImageURL, product.CreatedBy, product.ModifiedBy,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate bloquea la fila del producto hasta el fin de la transacción.
func (r *ProductRepository) GetForUpdate(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return scanProduct(r.q.QueryRow(context.Background(), query, id))
}

// List devuelve todos los productos, el más reciente primero.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id DESC`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.EstimatedPrice, &p.Stock, &p.ImageURL, &p.CreatedBy, &p.ModifiedBy); err != nil {
			return nil, fmt.Errorf("escanear producto: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// UpdateStock escribe el stock agregado del producto.
func (r *ProductRepository) UpdateStock(id int64, stock int, modifiedBy int64) error {
	query := `UPDATE products SET stock = $1, modified_by = $2 WHERE id = $3`

	tag, err := r.q.Exec(context.Background(), query, stock, modifiedBy, id)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("actualizar stock: producto %d no existe", id)
	}
	return nil
}

// Delete elimina el producto; movimientos y entradas caen en cascada (FK).
func (r *ProductRepository) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	return nil
}
