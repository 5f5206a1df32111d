package entity

import "github.com/shopspring/decimal"

// Product representa un producto del taller.
// Stock es el total agregado en mano; debe coincidir en todo momento con el
// efecto neto de los movimientos aplicados y las entradas por ubicación
// (ProductStock). Se actualiza únicamente vía el ledger de stock, nunca
// directamente desde un handler.
type Product struct {
	ID             int64
	Name           string
	Category       string
	EstimatedPrice decimal.Decimal
	Stock          int // invariante: Stock >= 0
	ImageURL       string
	CreatedBy      *int64
	ModifiedBy     *int64
}
