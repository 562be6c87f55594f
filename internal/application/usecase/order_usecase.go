package usecase

import (
	"context"

	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/internal/application/images"
	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/repository"
)

// OrderUseCase lectura y agregación de pedidos. Los pedidos los escribe la tienda
// pública; aquí nunca se mutan.
type OrderUseCase struct {
	repo     repository.OrderRepository
	resolver *images.Resolver
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, resolver *images.Resolver) *OrderUseCase {
	return &OrderUseCase{repo: repo, resolver: resolver}
}

// List devuelve todos los pedidos de todos los padres, con las imágenes de sus
// líneas resueltas.
func (uc *OrderUseCase) List(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resolved := uc.resolver.ResolveOrders(ctx, orders)
	items := make([]dto.OrderResponse, len(resolved))
	for i, o := range resolved {
		items[i] = *toOrderResponse(&o)
	}
	return &dto.OrderListResponse{Items: items}, nil
}

// Summary devuelve el número de pedidos y el total de ventas agregado.
func (uc *OrderUseCase) Summary(ctx context.Context) (*dto.OrderSummaryResponse, error) {
	orders, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.TotalSales(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OrderSummaryResponse{Count: len(orders), TotalSales: total}, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = dto.OrderItemResponse{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			ImageURL:    it.ImageURL,
		}
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		TotalAmount: o.TotalAmount,
		Timestamp:   o.Timestamp,
		Items:       items,
	}
}
