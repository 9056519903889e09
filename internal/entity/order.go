package entity

import "time"

type Order struct {
	ID       uint    `gorm:"column:id_pedido;primaryKey"`
	BuyerID  uint    `gorm:"column:id_comprador;not null;index"`
	SellerID uint    `gorm:"column:id_vendedor;not null;index"`
	Total    float64 `gorm:"column:total;type:decimal(10,2);not null"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `gorm:"column:fecha_creacion"`
}

func (Order) TableName() string { return "pedidos" }

type OrderItem struct {
	ID        uint    `gorm:"column:id_item;primaryKey"`
	OrderID   uint    `gorm:"column:id_pedido;not null;index"`
	ProductID uint    `gorm:"column:id_producto;not null"`
	Quantity  int     `gorm:"column:cantidad;not null"`
	UnitPrice float64 `gorm:"column:precio_unitario;type:decimal(10,2);not null"`
}

func (OrderItem) TableName() string { return "pedido_items" }

// OrderSummary is an order joined with the counterparty's contact details.
type OrderSummary struct {
	Order
	SellerName  string `gorm:"column:vendedor_nombre"`
	SellerPhone string `gorm:"column:vendedor_telefono"`
}
