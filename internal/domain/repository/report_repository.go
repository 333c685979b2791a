package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MostSoldRow resultado crudo del agregado de salidas por producto.
type MostSoldRow struct {
	ProductID         string
	Name              string
	Category          string
	TotalSoldQuantity int64 // Σ quantity de los movimientos tipo saida
}

// LowStockRow producto cuya cantidad está en o por debajo del umbral.
type LowStockRow struct {
	ProductID string
	Name      string
	Quantity  int64
	Price     decimal.Decimal
	Category  string
}

// ReportRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// MostSold agrega las salidas por producto, descendente por total vendido
	// (empates resueltos por id de producto para un orden estable).
	MostSold(ctx context.Context, limit int) ([]MostSoldRow, error)
	// LowStock devuelve los productos con quantity <= threshold, ascendente
	// por cantidad.
	LowStock(ctx context.Context, threshold int64) ([]LowStockRow, error)
}
