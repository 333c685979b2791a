package dto

import "github.com/shopspring/decimal"

// MostSoldItem fila del reporte de productos más vendidos.
type MostSoldItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	TotalSoldQuantity int64  `json:"total_sold_quantity"`
}

// MostSoldReportResponse salida de GET /api/reports/most-sold.
type MostSoldReportResponse struct {
	Message string         `json:"message"`
	Data    []MostSoldItem `json:"data"`
}

// LowStockItem fila del reporte de stock bajo.
type LowStockItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// LowStockReportResponse salida de GET /api/reports/low-stock.
type LowStockReportResponse struct {
	Message string         `json:"message"`
	Data    []LowStockItem `json:"data"`
}
