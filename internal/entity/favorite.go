package entity

import "time"

type Favorite struct {
	UserID    uint `gorm:"column:id_usuario;primaryKey;autoIncrement:false"`
	ProductID uint `gorm:"column:id_producto;primaryKey;autoIncrement:false"`

	CreatedAt time.Time `gorm:"column:fecha_agregado"`
}

func (Favorite) TableName() string { return "favoritos" }
