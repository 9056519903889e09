package service

import (
	"context"

	"mercadovecino/internal/entity"
	"mercadovecino/internal/repository"
)

type FavoriteService struct {
	favorites repository.FavoriteRepository
	products  repository.ProductRepository
}

func NewFavoriteService(favorites repository.FavoriteRepository, products repository.ProductRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, products: products}
}

func (s *FavoriteService) Add(ctx context.Context, userID, productID uint) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.favorites.Add(ctx, userID, productID)
}

func (s *FavoriteService) Remove(ctx context.Context, userID, productID uint) error {
	return s.favorites.Remove(ctx, userID, productID)
}

func (s *FavoriteService) List(ctx context.Context, userID uint) ([]entity.ProductListing, error) {
	return s.favorites.ListByUser(ctx, userID)
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, productID uint) (bool, error) {
	return s.favorites.Exists(ctx, userID, productID)
}
