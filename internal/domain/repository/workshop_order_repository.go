package repository

import "github.com/jhoicas/Taller-api/internal/domain/entity"

// WorkshopOrderRepository define el puerto de persistencia para pedidos de
// taller (DIP). GetByID devuelve (nil, nil) si no existe.
type WorkshopOrderRepository interface {
	Create(order *entity.WorkshopOrder) error
	GetByID(id int64) (*entity.WorkshopOrder, error)
	List() ([]*entity.WorkshopOrder, error)
	Update(order *entity.WorkshopOrder) error
	Delete(id int64) error
}
