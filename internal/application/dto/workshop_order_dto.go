package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkshopOrderRequest entrada para crear un pedido de taller.
type CreateWorkshopOrderRequest struct {
	ProductID       int64           `json:"product_id" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required,min=1"`
	TotalOrderValue decimal.Decimal `json:"total_order_value" validate:"min=0"`
	MaterialCost    decimal.Decimal `json:"material_cost" validate:"min=0"`
	WoodCost        decimal.Decimal `json:"wood_cost" validate:"min=0"`
	OtherCosts      decimal.Decimal `json:"other_costs" validate:"min=0"`
	Notes           string          `json:"notes"`
}

// UpdateWorkshopOrderRequest actualización parcial de un pedido.
type UpdateWorkshopOrderRequest struct {
	ProductID       *int64           `json:"product_id"`
	Quantity        *int             `json:"quantity" validate:"omitempty,min=1"`
	TotalOrderValue *decimal.Decimal `json:"total_order_value"`
	MaterialCost    *decimal.Decimal `json:"material_cost"`
	WoodCost        *decimal.Decimal `json:"wood_cost"`
	OtherCosts      *decimal.Decimal `json:"other_costs"`
	Notes           *string          `json:"notes"`
}

// WorkshopOrderResponse salida de un pedido de taller.
type WorkshopOrderResponse struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	Quantity        int             `json:"quantity"`
	TotalOrderValue decimal.Decimal `json:"total_order_value"`
	MaterialCost    decimal.Decimal `json:"material_cost"`
	WoodCost        decimal.Decimal `json:"wood_cost"`
	OtherCosts      decimal.Decimal `json:"other_costs"`
	Date            time.Time       `json:"date"`
	Notes           string          `json:"notes"`
	CreatedBy       *int64          `json:"created_by"`
}
