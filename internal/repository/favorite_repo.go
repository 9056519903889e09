package repository

import (
	"context"
	"errors"

	"mercadovecino/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
	ListByUser(ctx context.Context, userID uint) ([]entity.ProductListing, error)
	Exists(ctx context.Context, userID, productID uint) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add is idempotent: marking an existing favorite again is not an error.
func (r *favoriteRepository) Add(ctx context.Context, userID, productID uint) error {
	favorite := entity.Favorite{UserID: userID, ProductID: productID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, productID uint) error {
	return r.db.WithContext(ctx).
		Where("id_usuario = ? AND id_producto = ?", userID, productID).
		Delete(&entity.Favorite{}).
		Error
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]entity.ProductListing, error) {
	var listings []entity.ProductListing
	err := r.db.WithContext(ctx).
		Table("favoritos f").
		Select("p.*, u.nombre AS vendedor_nombre, u.telefono AS vendedor_telefono, "+
			"COALESCE(AVG(res.calificacion), 0) AS rating, COUNT(res.id_resena) AS total_resenas").
		Joins("JOIN productos p ON f.id_producto = p.id_producto").
		Joins("JOIN usuarios u ON p.id_vendedor = u.id_usuario").
		Joins("LEFT JOIN resenas res ON p.id_producto = res.id_producto").
		Where("f.id_usuario = ?", userID).
		Group("p.id_producto, u.nombre, u.telefono, f.fecha_agregado").
		Order("f.fecha_agregado DESC").
		Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Favorite{}).
		Where("id_usuario = ? AND id_producto = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
