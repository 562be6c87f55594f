package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem línea de un pedido.
type OrderItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

// Order pedido generado por la tienda pública. Este sistema solo lo lee y agrega;
// nunca escribe bajo orders/.
type Order struct {
	ID          string          `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Timestamp   time.Time       `json:"timestamp"`
	Items       []OrderItem     `json:"items"`
}
