package repository

import (
	"context"

	"mercadovecino/internal/entity"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByProduct(ctx context.Context, productID uint) ([]entity.ReviewWithAuthor, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID uint) ([]entity.ReviewWithAuthor, error) {
	var reviews []entity.ReviewWithAuthor
	err := r.db.WithContext(ctx).
		Table("resenas r").
		Select("r.*, u.nombre AS comprador_nombre").
		Joins("JOIN usuarios u ON r.id_comprador = u.id_usuario").
		Where("r.id_producto = ?", productID).
		Order("r.fecha_creacion DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
