package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/repository"
	"github.com/chicvault/admin-api/internal/domain/store"
)

const ordersPath = "orders"

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository. Los pedidos los escribe la
// tienda pública bajo orders/<parent>/<id>; aquí solo se leen, agregados a través
// de todos los padres. El total de ventas se calcula con un agregado SQL directo
// sobre las filas del árbol.
type OrderRepo struct {
	tree store.Tree
	q    Querier
}

// NewOrderRepository construye el adaptador de lectura de pedidos.
func NewOrderRepository(tree store.Tree, q Querier) *OrderRepo {
	return &OrderRepo{tree: tree, q: q}
}

// List devuelve todos los pedidos de todos los padres, los más recientes primero.
func (r *OrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	raw, err := r.tree.Get(ctx, ordersPath)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	orders := []entity.Order{}
	if raw == nil {
		return orders, nil
	}
	var byParent map[string]map[string]entity.Order
	if err := json.Unmarshal(raw, &byParent); err != nil {
		return nil, fmt.Errorf("decodificar pedidos: %w", err)
	}
	for _, group := range byParent {
		for id, o := range group {
			if o.ID == "" {
				o.ID = id
			}
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Timestamp.After(orders[j].Timestamp)
	})
	return orders, nil
}

// TotalSales suma totalAmount de todos los pedidos con un agregado en la base.
func (r *OrderRepo) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM((value->>'totalAmount')::numeric), 0)
		 FROM tree_nodes WHERE path LIKE $1 ESCAPE '\'`, likePrefix(ordersPath)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total de ventas: %w", err)
	}
	return total, nil
}
