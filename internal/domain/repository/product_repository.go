package repository

import "github.com/jhoicas/Taller-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los getters devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// UpdateStock escribe el stock agregado y el usuario que lo modificó.
	UpdateStock(id int64, stock int, modifiedBy int64) error
	Delete(id int64) error
}
