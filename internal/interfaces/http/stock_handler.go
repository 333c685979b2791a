package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/application/stock"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
)

// StockHandler expone el libro de movimientos: entradas, salidas, cantidad
// actual e historial.
type StockHandler struct {
	uc *stock.MovementUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *stock.MovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Entry POST /api/stock/entry (admin). Registra una entrada y devuelve la
// nueva cantidad. 400 inválido; 404 producto inexistente.
func (h *StockHandler) Entry(c *fiber.Ctx) error {
	return h.register(c, entity.MovementTypeEntrada)
}

// Exit POST /api/stock/exit (admin). Registra una salida. 400 si el stock es
// insuficiente (sin ningún efecto); 404 producto inexistente.
func (h *StockHandler) Exit(c *fiber.Ctx) error {
	return h.register(c, entity.MovementTypeSaida)
}

// Movement POST /api/stock/movement (admin). Variante genérica con el tipo en
// el body (entrada | saida).
func (h *StockHandler) Movement(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.apply(c, in.ProductID, in.Type, in.Quantity)
}

func (h *StockHandler) register(c *fiber.Ctx, movementType string) error {
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.apply(c, in.ProductID, movementType, in.Quantity)
}

func (h *StockHandler) apply(c *fiber.Ctx, productID, movementType string, quantity int64) error {
	result, err := h.uc.Register(c.Context(), stock.MovementInput{
		ProductID: productID,
		Type:      movementType,
		Quantity:  quantity,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return domainError(c, "stock.register", err)
	}
	return c.JSON(dto.StockMovementResponse{
		Message: fmt.Sprintf("Movimiento de stock registrado con éxito. Nueva cantidad: %d", result.NewQuantity),
		Product: dto.StockProductSummary{
			ID:       result.ProductID,
			Name:     result.ProductName,
			Quantity: result.NewQuantity,
		},
	})
}

// Quantity GET /api/stock/:productId (autenticado). Cantidad actual del producto.
func (h *StockHandler) Quantity(c *fiber.Ctx) error {
	product, err := h.uc.CurrentQuantity(c.Context(), c.Params("productId"))
	if err != nil {
		return domainError(c, "stock.quantity", err)
	}
	return c.JSON(dto.StockQuantityResponse{
		ProductID:       product.ID,
		ProductName:     product.Name,
		CurrentQuantity: product.Quantity,
	})
}

// History GET /api/stock/history/:productId (autenticado). Historial completo
// del producto, más reciente primero.
func (h *StockHandler) History(c *fiber.Ctx) error {
	result, err := h.uc.History(c.Context(), c.Params("productId"))
	if err != nil {
		return domainError(c, "stock.history", err)
	}
	history := make([]dto.MovementHistoryItem, 0, len(result.Movements))
	for _, m := range result.Movements {
		history = append(history, dto.MovementHistoryItem{
			ID:              m.ID,
			Type:            m.Type,
			Quantity:        m.Quantity,
			MovementDate:    m.MovementDate,
			ResponsibleUser: m.ResponsibleUser,
		})
	}
	return c.JSON(dto.StockHistoryResponse{
		ProductName:     result.ProductName,
		CurrentQuantity: result.CurrentQuantity,
		History:         history,
	})
}
