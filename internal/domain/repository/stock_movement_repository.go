package repository

import "github.com/jhoicas/Taller-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del ledger de
// movimientos (DIP). El ledger es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List() ([]*entity.StockMovement, error)
	ListByProduct(productID int64) ([]*entity.StockMovement, error)
	// SumDeltaByProduct devuelve la suma neta de los movimientos aplicados
	// (positivos para add, negativos para subtract). Usado por la auditoría.
	SumDeltaByProduct(productID int64) (int, error)
}
