package dto

import "time"

// StockEntryRequest body para POST /api/stock/entry y /api/stock/exit.
type StockEntryRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// StockMovementRequest body para POST /api/stock/movement (tipo explícito).
type StockMovementRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Type      string `json:"type"` // entrada | saida
}

// StockProductSummary producto resumido tras un movimiento.
type StockProductSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// StockMovementResponse salida de un movimiento aplicado.
type StockMovementResponse struct {
	Message string              `json:"message"`
	Product StockProductSummary `json:"product"`
}

// StockQuantityResponse salida de GET /api/stock/:productId.
type StockQuantityResponse struct {
	ProductID       string `json:"productId"`
	ProductName     string `json:"productName"`
	CurrentQuantity int64  `json:"currentQuantity"`
}

// MovementHistoryItem fila del historial en la respuesta HTTP.
type MovementHistoryItem struct {
	ID              int64     `json:"id"`
	Type            string    `json:"type"`
	Quantity        int64     `json:"quantity"`
	MovementDate    time.Time `json:"movement_date"`
	ResponsibleUser *string   `json:"responsible_user"`
}

// StockHistoryResponse salida de GET /api/stock/history/:productId.
type StockHistoryResponse struct {
	ProductName     string                `json:"productName"`
	CurrentQuantity int64                 `json:"currentQuantity"`
	History         []MovementHistoryItem `json:"history"`
}
