package repository

import (
	"context"

	"github.com/tu-usuario/stock-control/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByIDForUpdate y UpdateQuantity solo tienen sentido dentro de una
// transacción (ver application/stock.TxRunner).
type ProductRepository interface {
	// Create persiste un producto nuevo. Devuelve domain.ErrDuplicate si el
	// nombre ya existe.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve el producto o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate devuelve el producto bloqueando su fila
	// (SELECT ... FOR UPDATE) hasta el fin de la transacción, o nil si no existe.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve todos los productos ordenados por fecha de creación.
	List(ctx context.Context) ([]*entity.Product, error)
	// Update actualiza nombre, precio y categoría. Quantity NO se toca aquí:
	// solo el libro de movimientos la modifica, vía UpdateQuantity.
	// Devuelve domain.ErrNotFound o domain.ErrDuplicate según corresponda.
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity fija la cantidad del producto. Reservado al libro de
	// movimientos, dentro de la misma transacción que inserta el movimiento.
	UpdateQuantity(ctx context.Context, productID string, quantity int64) error
	// Delete elimina el producto (y en cascada sus movimientos).
	// Devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
