package repository

import (
	"context"

	"mercadovecino/internal/entity"

	"gorm.io/gorm"
)

const (
	defaultListingLimit = 20
	maxListingLimit     = 100
)

// ProductFilter is the fixed set of optional catalog filters. Every clause
// it emits is parameterized, including the limit.
type ProductFilter struct {
	Category string
	Search   string
	Limit    int
}

func (f ProductFilter) apply(query *gorm.DB) *gorm.DB {
	if f.Category != "" && f.Category != "TODOS" {
		query = query.Where("p.categoria = ?", f.Category)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where("(p.nombre LIKE ? OR p.descripcion LIKE ?)", pattern, pattern)
	}
	return query
}

func (f ProductFilter) limit() int {
	if f.Limit <= 0 {
		return defaultListingLimit
	}
	if f.Limit > maxListingLimit {
		return maxListingLimit
	}
	return f.Limit
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]entity.ProductListing, error)
	FindByID(ctx context.Context, id uint) (*entity.ProductListing, error)
	ListBySeller(ctx context.Context, sellerID uint) ([]entity.ProductListing, error)
	Categories(ctx context.Context) ([]string, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) listingQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("productos p").
		Select("p.*, u.nombre AS vendedor_nombre, u.telefono AS vendedor_telefono, " +
			"COALESCE(AVG(res.calificacion), 0) AS rating, COUNT(res.id_resena) AS total_resenas").
		Joins("JOIN usuarios u ON p.id_vendedor = u.id_usuario").
		Joins("LEFT JOIN resenas res ON p.id_producto = res.id_producto").
		Group("p.id_producto, u.nombre, u.telefono")
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]entity.ProductListing, error) {
	var listings []entity.ProductListing
	query := r.listingQuery(ctx).Where("p.estado = ?", entity.ProductPublished)
	query = filter.apply(query)
	err := query.
		Order("rating DESC, p.fecha_registro DESC").
		Limit(filter.limit()).
		Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*entity.ProductListing, error) {
	var listing entity.ProductListing
	err := r.listingQuery(ctx).
		Where("p.id_producto = ?", id).
		Scan(&listing).Error
	if err != nil {
		return nil, err
	}
	if listing.ID == 0 {
		return nil, nil
	}
	return &listing, nil
}

func (r *productRepository) ListBySeller(ctx context.Context, sellerID uint) ([]entity.ProductListing, error) {
	var listings []entity.ProductListing
	err := r.listingQuery(ctx).
		Where("p.id_vendedor = ?", sellerID).
		Order("p.fecha_registro DESC").
		Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Distinct("categoria").
		Where("estado = ?", entity.ProductPublished).
		Order("categoria").
		Pluck("categoria", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
