package stock

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción SQL. Commit si fn devuelve nil, Rollback en caso contrario.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		entryRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error) error
}
