package service

import (
	"context"
	"strings"

	"mercadovecino/internal/entity"
	"mercadovecino/internal/repository"
)

type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
}

func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

func (s *ReviewService) Create(ctx context.Context, buyerID, productID uint, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidInput
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}

	return s.reviews.Create(ctx, &entity.Review{
		ProductID: productID,
		BuyerID:   buyerID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	})
}
