package usecase

import (
	"time"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// WorkshopOrderUseCase casos de uso CRUD de pedidos de taller.
type WorkshopOrderUseCase struct {
	repo        repository.WorkshopOrderRepository
	productRepo repository.ProductRepository
}

// NewWorkshopOrderUseCase construye el caso de uso.
func NewWorkshopOrderUseCase(repo repository.WorkshopOrderRepository, productRepo repository.ProductRepository) *WorkshopOrderUseCase {
	return &WorkshopOrderUseCase{repo: repo, productRepo: productRepo}
}

// Create registra un pedido para un producto existente.
func (uc *WorkshopOrderUseCase) Create(userID int64, in dto.CreateWorkshopOrderRequest) (*dto.WorkshopOrderResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalOrderValue.LessThan(decimal.Zero) || in.MaterialCost.LessThan(decimal.Zero) ||
		in.WoodCost.LessThan(decimal.Zero) || in.OtherCosts.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	order := &entity.WorkshopOrder{
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		TotalOrderValue: in.TotalOrderValue,
		MaterialCost:    in.MaterialCost,
		WoodCost:        in.WoodCost,
		OtherCosts:      in.OtherCosts,
		Date:            time.Now(),
		Notes:           in.Notes,
		CreatedBy:       &userID,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista todos los pedidos, el más reciente primero.
func (uc *WorkshopOrderUseCase) List() ([]dto.WorkshopOrderResponse, error) {
	orders, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkshopOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Update aplica una actualización parcial sobre un pedido existente.
func (uc *WorkshopOrderUseCase) Update(id int64, in dto.UpdateWorkshopOrderRequest) (*dto.WorkshopOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductID != nil {
		product, err := uc.productRepo.GetByID(*in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		order.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		order.Quantity = *in.Quantity
	}
	if in.TotalOrderValue != nil {
		order.TotalOrderValue = *in.TotalOrderValue
	}
	if in.MaterialCost != nil {
		order.MaterialCost = *in.MaterialCost
	}
	if in.WoodCost != nil {
		order.WoodCost = *in.WoodCost
	}
	if in.OtherCosts != nil {
		order.OtherCosts = *in.OtherCosts
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina un pedido.
func (uc *WorkshopOrderUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toOrderResponse(o *entity.WorkshopOrder) *dto.WorkshopOrderResponse {
	return &dto.WorkshopOrderResponse{
		ID:              o.ID,
		ProductID:       o.ProductID,
		Quantity:        o.Quantity,
		TotalOrderValue: o.TotalOrderValue,
		MaterialCost:    o.MaterialCost,
		WoodCost:        o.WoodCost,
		OtherCosts:      o.OtherCosts,
		Date:            o.Date,
		Notes:           o.Notes,
		CreatedBy:       o.CreatedBy,
	}
}
