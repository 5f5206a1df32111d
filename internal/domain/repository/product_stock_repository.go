package repository

import "github.com/jhoicas/Taller-api/internal/domain/entity"

// ProductStockRepository define el puerto de persistencia para las entradas
// de stock por ubicación (DIP). GetByID devuelve (nil, nil) si no existe.
type ProductStockRepository interface {
	Create(stock *entity.ProductStock) error
	GetByID(id int64) (*entity.ProductStock, error)
	List() ([]*entity.ProductStock, error)
	ListByProduct(productID int64) ([]*entity.ProductStock, error)
	Update(stock *entity.ProductStock) error
	Delete(id int64) error
	// SumQuantityByProduct suma las cantidades de las entradas vigentes.
	// Usado por la auditoría de consistencia.
	SumQuantityByProduct(productID int64) (int, error)
}
