package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// Quantity siempre positiva; el signo lo determina Type (add | subtract).
type RegisterMovementRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=add subtract"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Reason    string `json:"reason" validate:"required"`
	Note      string `json:"note"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Note      string    `json:"note"`
	Date      time.Time `json:"date"`
	CreatedBy *int64    `json:"created_by"`
}

// CreateProductStockRequest entrada para crear una entrada de stock por ubicación.
type CreateProductStockRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Workshop  string `json:"workshop" validate:"required"`
}

// UpdateProductStockRequest entrada para actualizar una entrada de stock.
// ProductID se incluye solo para rechazarlo: el producto dueño de una entrada
// no se puede cambiar.
type UpdateProductStockRequest struct {
	ProductID *int64  `json:"product_id"`
	Color     *string `json:"color"`
	Quantity  *int    `json:"quantity" validate:"omitempty,min=1"`
	Workshop  *string `json:"workshop"`
}

// ProductStockResponse salida de una entrada de stock por ubicación.
type ProductStockResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	Workshop  string `json:"workshop"`
	CreatedBy *int64 `json:"created_by"`
}

// ReconcileResponse resultado de la auditoría de consistencia de un producto:
// compara el stock agregado contra la suma del ledger y de las entradas vigentes.
type ReconcileResponse struct {
	ProductID     int64 `json:"product_id"`
	Stock         int   `json:"stock"`
	ExpectedStock int   `json:"expected_stock"`
	Drift         int   `json:"drift"`
	Consistent    bool  `json:"consistent"`
}
