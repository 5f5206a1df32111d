package usecase

import (
	"time"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CashflowUseCase casos de uso de transacciones de caja.
type CashflowUseCase struct {
	repo repository.CashflowRepository
}

// NewCashflowUseCase construye el caso de uso.
func NewCashflowUseCase(repo repository.CashflowRepository) *CashflowUseCase {
	return &CashflowUseCase{repo: repo}
}

// Create registra una transacción. Date en cero usa la hora del servidor.
func (uc *CashflowUseCase) Create(userID int64, in dto.CreateCashflowRequest) (*dto.CashflowResponse, error) {
	if in.Type != entity.CashflowTypeIncome && in.Type != entity.CashflowTypeExpense {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.LessThan(decimal.Zero) || in.Category == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	cashflow := &entity.Cashflow{
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        date,
		CreatedBy:   &userID,
	}
	if err := uc.repo.Create(cashflow); err != nil {
		return nil, err
	}
	return toCashflowResponse(cashflow), nil
}

// List lista todas las transacciones, la más reciente primero.
func (uc *CashflowUseCase) List() ([]dto.CashflowResponse, error) {
	cashflows, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashflowResponse, 0, len(cashflows))
	for _, c := range cashflows {
		out = append(out, *toCashflowResponse(c))
	}
	return out, nil
}

func toCashflowResponse(c *entity.Cashflow) *dto.CashflowResponse {
	return &dto.CashflowResponse{
		ID:          c.ID,
		Type:        c.Type,
		Amount:      c.Amount,
		Category:    c.Category,
		Description: c.Description,
		Date:        c.Date,
		CreatedBy:   c.CreatedBy,
	}
}
