package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/chicvault/admin-api/internal/domain/entity"
)

// OrderRepository define el puerto de lectura de pedidos. Los pedidos los escribe
// la tienda pública bajo orders/<parent>/<id>; aquí se leen agregados a través de
// todos los padres.
type OrderRepository interface {
	List(ctx context.Context) ([]entity.Order, error)
	TotalSales(ctx context.Context) (decimal.Decimal, error)
}
