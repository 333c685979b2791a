package repository

import (
	"context"

	"github.com/tu-usuario/stock-control/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrDuplicate si el
	// username ya existe.
	Create(ctx context.Context, user *entity.User) error
	// FindByUsername devuelve el usuario o nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindByID devuelve el usuario o nil si no existe.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
