package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashflowRequest entrada para registrar una transacción de caja.
// Date es opcional; si viene en cero se usa la hora del servidor.
type CreateCashflowRequest struct {
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" validate:"min=0"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Date        time.Time       `json:"date"`
}

// CashflowResponse salida de una transacción de caja.
type CashflowResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedBy   *int64          `json:"created_by"`
}
