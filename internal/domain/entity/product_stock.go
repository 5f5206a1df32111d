package entity

// ProductStock es el desglose del inventario de un producto por color y
// taller físico. A diferencia de los movimientos es mutable y borrable;
// cada fila aporta su Quantity al stock agregado del producto.
type ProductStock struct {
	ID        int64
	ProductID int64 // inmutable después de creada la entrada
	Color     string
	Quantity  int
	Workshop  string
	CreatedBy *int64
}
