package stock

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-control/internal/domain"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/internal/domain/repository"
)

// MovementUseCase es el único camino permitido para cambiar Product.Quantity
// y el único escritor del libro de movimientos. Cada registro se aplica de
// forma transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback,
// de modo que en todo momento:
//
//	quantity = cantidad inicial + Σ entradas − Σ salidas
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso. productRepo y movRepo van
// atados al pool (lecturas fuera de transacción); txRunner crea sus propios
// repos por transacción para los registros.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

// MovementInput entrada para registrar un movimiento de stock.
type MovementInput struct {
	ProductID string
	Type      string // entrada | saida
	Quantity  int64  // > 0
	UserID    string // usuario responsable (del token)
}

// MovementResult resultado de un movimiento aplicado.
type MovementResult struct {
	MovementID  int64
	ProductID   string
	ProductName string
	NewQuantity int64
}

// HistoryResult historial completo de un producto, más reciente primero.
type HistoryResult struct {
	ProductName     string
	CurrentQuantity int64
	Movements       []repository.MovementHistoryItem
}

// Register aplica un movimiento: dentro de una transacción bloquea la fila
// del producto, verifica suficiencia en las salidas, actualiza la cantidad e
// inserta el registro del movimiento. Las dos escrituras se confirman juntas
// o no queda ninguna.
//
// El bloqueo de fila elimina la carrera check-then-act: dos salidas
// concurrentes sobre el mismo producto se serializan en la DB, y la segunda
// relee la cantidad ya descontada por la primera. Esto vale también con
// varias instancias del servidor, porque el lock vive en PostgreSQL y no en
// el proceso.
func (uc *MovementUseCase) Register(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if input.ProductID == "" || input.Quantity <= 0 || !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}

	var result MovementResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto hasta el fin de la transacción.
		product, err := productRepo.GetByIDForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity := product.Quantity
		switch input.Type {
		case entity.MovementTypeEntrada:
			newQuantity += input.Quantity
		case entity.MovementTypeSaida:
			if product.Quantity < input.Quantity {
				// Aborta sin efecto: el Rollback del runner descarta el lock
				// y no se escribió nada todavía.
				return domain.ErrInsufficientStock
			}
			newQuantity -= input.Quantity
		}

		if err := productRepo.UpdateQuantity(ctx, input.ProductID, newQuantity); err != nil {
			return err
		}
		var userID *string
		if input.UserID != "" {
			userID = &input.UserID
		}
		mov := &entity.StockMovement{
			ProductID:    input.ProductID,
			Type:         input.Type,
			Quantity:     input.Quantity,
			MovementDate: time.Now(),
			UserID:       userID,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		result = MovementResult{
			MovementID:  mov.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			NewQuantity: newQuantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// History devuelve el historial del producto ordenado por fecha descendente
// (id como desempate). ErrNotFound si el producto no existe.
func (uc *MovementUseCase) History(ctx context.Context, productID string) (*HistoryResult, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &HistoryResult{
		ProductName:     product.Name,
		CurrentQuantity: product.Quantity,
		Movements:       movements,
	}, nil
}

// CurrentQuantity proyección trivial del producto. ErrNotFound si no existe.
func (uc *MovementUseCase) CurrentQuantity(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}
