package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-control/internal/application/auth"
	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/application/stock"
	"github.com/tu-usuario/stock-control/internal/application/usecase"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	StockUC   *stock.MovementUseCase
	ReportUC  *usecase.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	requireAuth := AuthMiddleware(deps.JWTSecret)
	requireAdmin := RequireRole(entity.RoleAdmin)

	// Ruta de verificación RBAC (solo admin)
	api.Get("/admin-only", requireAuth, requireAdmin, func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Accedió a una ruta de administrador"})
	})

	// Products: lectura para cualquier autenticado, escritura solo admin
	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", requireAdmin, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", requireAdmin, productHandler.Update)
	products.Delete("/:id", requireAdmin, productHandler.Delete)

	// Stock: movimientos solo admin, consultas para cualquier autenticado.
	// Las rutas fijas van antes que /:productId para que Fiber no las capture
	// como parámetro.
	stockGroup := api.Group("/stock", requireAuth)
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/movement", requireAdmin, stockHandler.Movement)
	stockGroup.Post("/entry", requireAdmin, stockHandler.Entry)
	stockGroup.Post("/exit", requireAdmin, stockHandler.Exit)
	stockGroup.Get("/history/:productId", stockHandler.History)
	stockGroup.Get("/:productId", stockHandler.Quantity)

	// Reports (solo admin)
	reports := api.Group("/reports", requireAuth, requireAdmin)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/most-sold", reportHandler.MostSold)
	reports.Get("/low-stock", reportHandler.LowStock)
}
