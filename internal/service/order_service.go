package service

import (
	"context"

	"mercadovecino/internal/entity"
	"mercadovecino/internal/repository"
)

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// Create places an order for a published product. The total is computed from
// the stored price, never from form input.
func (s *OrderService) Create(ctx context.Context, buyerID, productID uint, quantity int) (uint, error) {
	if quantity < 1 {
		return 0, ErrInvalidInput
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product == nil || product.Status != entity.ProductPublished {
		return 0, ErrNotFound
	}

	order := &entity.Order{
		BuyerID:  buyerID,
		SellerID: product.SellerID,
		Total:    product.Price * float64(quantity),
		Items: []entity.OrderItem{{
			ProductID: product.ID,
			Quantity:  quantity,
			UnitPrice: product.Price,
		}},
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *OrderService) ListForBuyer(ctx context.Context, buyerID uint) ([]entity.OrderSummary, error) {
	return s.orders.ListByBuyer(ctx, buyerID)
}

func (s *OrderService) ListForSeller(ctx context.Context, sellerID uint) ([]entity.OrderSummary, error) {
	return s.orders.ListBySeller(ctx, sellerID)
}
