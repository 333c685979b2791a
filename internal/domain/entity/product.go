package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Quantity solo se modifica a
// través del libro de movimientos (ver application/stock); nunca por escritura
// directa, para que siempre se cumpla:
//
//	quantity = cantidad inicial + Σ entradas − Σ salidas
type Product struct {
	ID        string
	Name      string // único global
	Quantity  int64  // siempre >= 0
	Price     decimal.Decimal
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
