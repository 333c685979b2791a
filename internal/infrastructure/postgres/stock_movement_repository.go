package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento y rellena movement.ID con el BIGSERIAL generado.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, type, quantity, movement_date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, movement.Type, movement.Quantity, movement.MovementDate, movement.UserID,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial del producto, más reciente primero.
// El id desempata movimientos con el mismo movement_date.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string) ([]repository.MovementHistoryItem, error) {
	query := `
		SELECT sm.id, sm.type, sm.quantity, sm.movement_date, u.username AS responsible_user
		FROM stock_movements sm
		LEFT JOIN users u ON sm.user_id = u.id
		WHERE sm.product_id = $1
		ORDER BY sm.movement_date DESC, sm.id DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementHistoryItem
	for rows.Next() {
		var item repository.MovementHistoryItem
		if err := rows.Scan(&item.ID, &item.Type, &item.Quantity, &item.MovementDate,
			&item.ResponsibleUser); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
