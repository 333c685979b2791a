package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/application/usecase"
)

// ProductHandler maneja el CRUD del catálogo.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create POST /api/products (admin). 201 con el producto; 400 inválido; 409 nombre duplicado.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return domainError(c, "product.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductMessageResponse{
		Message: "Producto registrado con éxito",
		Product: *product,
	})
}

// List GET /api/products (autenticado).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, "product.list", err)
	}
	return c.JSON(products)
}

// GetByID GET /api/products/:id (autenticado). 404 si no existe.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, "product.get", err)
	}
	return c.JSON(product)
}

// Update PUT /api/products/:id (admin). 404 si no existe; 409 si el rename choca.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return domainError(c, "product.update", err)
	}
	return c.JSON(dto.ProductMessageResponse{
		Message: "Producto actualizado con éxito",
		Product: *product,
	})
}

// Delete DELETE /api/products/:id (admin). Borra también el historial de
// movimientos del producto (cascada). 404 si no existe.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, "product.delete", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado con éxito"})
}
