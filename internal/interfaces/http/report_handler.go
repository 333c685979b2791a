package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/application/usecase"
)

// ReportHandler expone los reportes de inventario (solo admin).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MostSold GET /api/reports/most-sold (admin). Top 10 de productos por
// salidas acumuladas.
func (h *ReportHandler) MostSold(c *fiber.Ctx) error {
	data, err := h.uc.MostSold(c.Context(), usecase.DefaultMostSoldLimit)
	if err != nil {
		return domainError(c, "report.most-sold", err)
	}
	return c.JSON(dto.MostSoldReportResponse{
		Message: "Reporte de productos más vendidos",
		Data:    data,
	})
}

// LowStock GET /api/reports/low-stock?threshold=N (admin). Umbral por defecto
// 10; un valor no numérico usa el defecto y uno negativo es 400.
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := int64(usecase.DefaultLowStockThreshold)
	if raw := c.Query("threshold"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			threshold = n
		}
	}
	data, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return domainError(c, "report.low-stock", err)
	}
	return c.JSON(dto.LowStockReportResponse{
		Message: fmt.Sprintf("Reporte de productos con stock bajo (umbral: %d)", threshold),
		Data:    data,
	})
}
