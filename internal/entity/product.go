package entity

import "time"

type ProductStatus string

const (
	ProductPublished ProductStatus = "PUBLICADO"
	ProductDraft     ProductStatus = "BORRADOR"
)

type Product struct {
	ID       uint `gorm:"column:id_producto;primaryKey"`
	SellerID uint `gorm:"column:id_vendedor;not null;index"`
	Seller   User `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`

	Name        string        `gorm:"column:nombre;type:varchar(150);not null"`
	Description string        `gorm:"column:descripcion;type:text"`
	Category    string        `gorm:"column:categoria;type:varchar(50);index"`
	Price       float64       `gorm:"column:precio;type:decimal(10,2);not null"`
	Stock       int           `gorm:"column:stock;default:0"`
	Status      ProductStatus `gorm:"column:estado;type:varchar(20);default:'PUBLICADO';not null"`

	CreatedAt time.Time `gorm:"column:fecha_registro"`
}

func (Product) TableName() string { return "productos" }

// ProductListing is a catalog row: the product joined with its seller's name
// and the aggregated review score.
type ProductListing struct {
	Product
	SellerName  string  `gorm:"column:vendedor_nombre"`
	SellerPhone string  `gorm:"column:vendedor_telefono"`
	Rating      float64 `gorm:"column:rating"`
	ReviewCount int     `gorm:"column:total_resenas"`
}
