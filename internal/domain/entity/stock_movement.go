package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeAdd      = "add"      // entrada
	MovementTypeSubtract = "subtract" // salida
)

// StockMovement es un registro inmutable del ledger: un alta o baja discreta
// del stock de un producto. Nunca se actualiza ni se borra de forma
// independiente; solo desaparece en cascada con su producto.
type StockMovement struct {
	ID        int64
	ProductID int64
	Type      string // add | subtract
	Quantity  int    // siempre positivo; el signo lo da Type
	Reason    string
	Note      string
	Date      time.Time
	CreatedBy *int64
}

// Delta devuelve el efecto del movimiento sobre el stock agregado.
func (m *StockMovement) Delta() int {
	if m.Type == MovementTypeSubtract {
		return -m.Quantity
	}
	return m.Quantity
}
