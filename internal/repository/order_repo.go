package repository

import (
	"context"

	"mercadovecino/internal/entity"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	ListByBuyer(ctx context.Context, buyerID uint) ([]entity.OrderSummary, error)
	ListBySeller(ctx context.Context, sellerID uint) ([]entity.OrderSummary, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order together with its items in one transaction.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID uint) ([]entity.OrderSummary, error) {
	var orders []entity.OrderSummary
	err := r.db.WithContext(ctx).
		Table("pedidos p").
		Select("p.*, u.nombre AS vendedor_nombre, u.telefono AS vendedor_telefono").
		Joins("JOIN usuarios u ON p.id_vendedor = u.id_usuario").
		Where("p.id_comprador = ?", buyerID).
		Order("p.fecha_creacion DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListBySeller(ctx context.Context, sellerID uint) ([]entity.OrderSummary, error) {
	var orders []entity.OrderSummary
	err := r.db.WithContext(ctx).
		Table("pedidos p").
		Select("p.*, u.nombre AS vendedor_nombre, u.telefono AS vendedor_telefono").
		Joins("JOIN usuarios u ON p.id_comprador = u.id_usuario").
		Where("p.id_vendedor = ?", sellerID).
		Order("p.fecha_creacion DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
