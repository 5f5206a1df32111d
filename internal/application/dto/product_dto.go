package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Category       string          `json:"category" validate:"required"`
	EstimatedPrice decimal.Decimal `json:"estimated_price" validate:"min=0"`
	Stock          int             `json:"stock" validate:"min=0"`
	ImageURL       string          `json:"image_url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	EstimatedPrice decimal.Decimal `json:"estimated_price"`
	Stock          int             `json:"stock"`
	ImageURL       string          `json:"image_url"`
	CreatedBy      *int64          `json:"created_by"`
	ModifiedBy     *int64          `json:"modified_by"`
}
