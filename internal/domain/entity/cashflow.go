package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de caja.
const (
	CashflowTypeIncome  = "income"
	CashflowTypeExpense = "expense"
)

// Cashflow representa una transacción de caja (ingreso o gasto).
type Cashflow struct {
	ID          int64
	Type        string // income | expense
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	CreatedBy   *int64
}
