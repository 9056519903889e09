package service

import (
	"context"
	"strings"

	"mercadovecino/internal/entity"
	"mercadovecino/internal/repository"
)

type CatalogService struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
}

func NewCatalogService(products repository.ProductRepository, reviews repository.ReviewRepository) *CatalogService {
	return &CatalogService{products: products, reviews: reviews}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]entity.ProductListing, error) {
	return s.products.List(ctx, filter)
}

// FeaturedProducts returns the short listing shown on the landing page.
func (s *CatalogService) FeaturedProducts(ctx context.Context) ([]entity.ProductListing, error) {
	return s.products.List(ctx, repository.ProductFilter{Limit: 8})
}

// ProductDetail loads one published product with its reviews.
func (s *CatalogService) ProductDetail(ctx context.Context, id uint) (*entity.ProductListing, []entity.ReviewWithAuthor, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if product == nil || product.Status != entity.ProductPublished {
		return nil, nil, ErrNotFound
	}

	reviews, err := s.reviews.ListByProduct(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return product, reviews, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.products.Categories(ctx)
}

type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
}

// CreateProduct publishes a new product for a seller.
func (s *CatalogService) CreateProduct(ctx context.Context, sellerID uint, input CreateProductInput) (uint, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || category == "" || input.Price <= 0 || input.Stock < 0 {
		return 0, ErrInvalidInput
	}

	product := &entity.Product{
		SellerID:    sellerID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Category:    category,
		Price:       input.Price,
		Stock:       input.Stock,
		Status:      entity.ProductPublished,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

func (s *CatalogService) SellerProducts(ctx context.Context, sellerID uint) ([]entity.ProductListing, error) {
	return s.products.ListBySeller(ctx, sellerID)
}
