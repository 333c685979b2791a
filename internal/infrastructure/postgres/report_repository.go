package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-control/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de inventario.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// MostSold agrega las salidas ('saida') por producto. El total por producto
// coincide con la suma de su historial de salidas por construcción del libro
// de movimientos. Empates resueltos por id para un orden estable.
func (r *ReportRepo) MostSold(ctx context.Context, limit int) ([]repository.MostSoldRow, error) {
	const query = `
		SELECT p.id, p.name, p.category,
		       SUM(sm.quantity)::BIGINT AS total_sold_quantity
		FROM stock_movements sm
		JOIN products p ON sm.product_id = p.id
		WHERE sm.type = 'saida'
		GROUP BY p.id, p.name, p.category
		ORDER BY total_sold_quantity DESC, p.id
		LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.MostSold: %w", err)
	}
	defer rows.Close()

	var results []repository.MostSoldRow
	for rows.Next() {
		var row repository.MostSoldRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Category, &row.TotalSoldQuantity); err != nil {
			return nil, fmt.Errorf("report.MostSold scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// LowStock devuelve los productos con quantity <= threshold, ascendente por cantidad.
func (r *ReportRepo) LowStock(ctx context.Context, threshold int64) ([]repository.LowStockRow, error) {
	const query = `
		SELECT id, name, quantity, price, category
		FROM products
		WHERE quantity <= $1
		ORDER BY quantity ASC`

	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("report.LowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Quantity, &row.Price, &row.Category); err != nil {
			return nil, fmt.Errorf("report.LowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
