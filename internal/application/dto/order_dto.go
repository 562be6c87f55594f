package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse línea de un pedido con la imagen ya resuelta.
type OrderItemResponse struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

// OrderResponse salida de un pedido (solo lectura).
type OrderResponse struct {
	ID          string              `json:"id"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Timestamp   time.Time           `json:"timestamp"`
	Items       []OrderItemResponse `json:"items"`
}

// OrderListResponse pedidos agregados de todos los padres.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}

// OrderSummaryResponse agregado de ventas.
type OrderSummaryResponse struct {
	Count      int             `json:"count"`
	TotalSales decimal.Decimal `json:"totalSales"`
}
