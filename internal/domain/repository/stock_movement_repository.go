package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-control/internal/domain/entity"
)

// MovementHistoryItem fila del historial de un producto, con el username del
// responsable resuelto vía LEFT JOIN (nil si el usuario fue eliminado).
type MovementHistoryItem struct {
	ID              int64
	Type            string
	Quantity        int64
	MovementDate    time.Time
	ResponsibleUser *string
}

// StockMovementRepository define el puerto del libro de movimientos.
// Es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	// Create inserta un movimiento y rellena movement.ID con el id secuencial
	// generado por la DB.
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByProduct devuelve el historial completo del producto ordenado por
	// movement_date DESC, id DESC (el id desempata timestamps iguales).
	ListByProduct(ctx context.Context, productID string) ([]MovementHistoryItem, error)
}
