package repository

import "github.com/jhoicas/Taller-api/internal/domain/entity"

// CashflowRepository define el puerto de persistencia para Cashflow (DIP).
type CashflowRepository interface {
	Create(cashflow *entity.Cashflow) error
	List() ([]*entity.Cashflow, error)
}
