package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkshopOrder representa un pedido de fabricación al taller con su
// desglose de costos (material, madera, otros).
type WorkshopOrder struct {
	ID              int64
	ProductID       int64
	Quantity        int
	TotalOrderValue decimal.Decimal
	MaterialCost    decimal.Decimal
	WoodCost        decimal.Decimal
	OtherCosts      decimal.Decimal
	Date            time.Time
	Notes           string
	CreatedBy       *int64
}
