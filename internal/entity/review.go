package entity

import "time"

type Review struct {
	ID        uint   `gorm:"column:id_resena;primaryKey"`
	ProductID uint   `gorm:"column:id_producto;not null;index"`
	BuyerID   uint   `gorm:"column:id_comprador;not null;index"`
	Rating    int    `gorm:"column:calificacion;not null"`
	Comment   string `gorm:"column:comentario;type:text"`

	CreatedAt time.Time `gorm:"column:fecha_creacion"`
}

func (Review) TableName() string { return "resenas" }

type ReviewWithAuthor struct {
	Review
	AuthorName string `gorm:"column:comprador_nombre"`
}
