package usecase

import (
	"context"

	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/domain"
	"github.com/tu-usuario/stock-control/internal/domain/repository"
)

// Valores por defecto de los reportes.
const (
	DefaultMostSoldLimit     = 10
	DefaultLowStockThreshold = 10
)

// ReportUseCase proyecciones de solo lectura sobre catálogo y libro de
// movimientos. No muta nada; la autorización la aplica el middleware.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// MostSold productos con más salidas acumuladas, descendente por total.
// limit <= 0 aplica el valor por defecto (10).
func (uc *ReportUseCase) MostSold(ctx context.Context, limit int) ([]dto.MostSoldItem, error) {
	if limit <= 0 {
		limit = DefaultMostSoldLimit
	}
	rows, err := uc.reportRepo.MostSold(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MostSoldItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MostSoldItem{
			ID:                r.ProductID,
			Name:              r.Name,
			Category:          r.Category,
			TotalSoldQuantity: r.TotalSoldQuantity,
		})
	}
	return out, nil
}

// LowStock productos con quantity <= threshold, ascendente por cantidad.
// El umbral debe ser no negativo; negativo es ErrInvalidInput.
func (uc *ReportUseCase) LowStock(ctx context.Context, threshold int64) ([]dto.LowStockItem, error) {
	if threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockItem{
			ID:       r.ProductID,
			Name:     r.Name,
			Quantity: r.Quantity,
			Price:    r.Price,
			Category: r.Category,
		})
	}
	return out, nil
}
