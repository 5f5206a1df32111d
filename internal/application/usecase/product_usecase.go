package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/stock"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// initialStockReason motivo del movimiento que asienta el stock de alta.
const initialStockReason = "stock inicial"

// ProductUseCase casos de uso CRUD de productos. Las mutaciones de stock NO
// pasan por aquí: son responsabilidad exclusiva del ledger (stock.LedgerUseCase).
// La única excepción es el alta: un producto creado con stock > 0 asienta ese
// stock como primer movimiento del ledger, en la misma transacción.
type ProductUseCase struct {
	txRunner stock.TxRunner
	repo     repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner stock.TxRunner, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo}
}

// Create persiste un producto nuevo con su stock inicial (>= 0). Si el stock
// inicial es positivo se registra un movimiento "add" junto con el producto,
// para que el agregado siempre cuadre contra la suma del ledger.
func (uc *ProductUseCase) Create(ctx context.Context, userID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.EstimatedPrice.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:           in.Name,
		Category:       in.Category,
		EstimatedPrice: in.EstimatedPrice,
		Stock:          in.Stock,
		ImageURL:       in.ImageURL,
		CreatedBy:      &userID,
	}

	if in.Stock == 0 {
		if err := uc.repo.Create(product); err != nil {
			return nil, err
		}
		return toProductResponse(product), nil
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		_ repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return movRepo.Create(&entity.StockMovement{
			ProductID: product.ID,
			Type:      entity.MovementTypeAdd,
			Quantity:  in.Stock,
			Reason:    initialStockReason,
			Date:      time.Now(),
			CreatedBy: &userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos, el más reciente primero.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto. Movimientos, entradas por ubicación y pedidos
// asociados caen por cascada de la FK.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		EstimatedPrice: p.EstimatedPrice,
		Stock:          p.Stock,
		ImageURL:       p.ImageURL,
		CreatedBy:      p.CreatedBy,
		ModifiedBy:     p.ModifiedBy,
	}
}
