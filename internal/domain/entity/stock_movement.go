package entity

import "time"

// Tipos de movimiento de stock. Se conservan los valores del protocolo
// original ("entrada" aumenta la cantidad, "saida" la disminuye).
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSaida   = "saida"
)

// ValidMovementType indica si el tipo es entrada o saida.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSaida
}

// StockMovement es un registro inmutable del libro de movimientos: nunca se
// actualiza ni se borra, salvo por el borrado en cascada del producto.
// El ID es secuencial (BIGSERIAL) y sirve de desempate al ordenar el
// historial cuando dos movimientos comparten timestamp.
type StockMovement struct {
	ID           int64
	ProductID    string
	Type         string // entrada, saida
	Quantity     int64  // siempre > 0; el signo lo da Type
	MovementDate time.Time
	UserID       *string // nil si el usuario fue eliminado
}
