package entity

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleBuyer  UserRole = "COMPRADOR"
	RoleSeller UserRole = "VENDEDOR"
)

// roleLabels maps the public-facing role labels used by the registration
// form to the role stored on the user row.
var roleLabels = map[string]UserRole{
	"cliente":  RoleBuyer,
	"vendedor": RoleSeller,
}

// RoleFromLabel resolves a form label to a role. Unknown or empty labels
// default to buyer.
func RoleFromLabel(label string) UserRole {
	if role, ok := roleLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return role
	}
	return RoleBuyer
}

type User struct {
	ID           uint     `gorm:"column:id_usuario;primaryKey"`
	Name         string   `gorm:"column:nombre;type:varchar(100);not null"`
	Surname      string   `gorm:"column:apellido;type:varchar(100);not null"`
	Email        string   `gorm:"column:correo;type:varchar(255);uniqueIndex;not null"`
	Phone        string   `gorm:"column:telefono;type:varchar(30)"`
	PasswordHash string   `gorm:"column:password_hash;type:varchar(255);not null"`
	Address      string   `gorm:"column:direccion;type:varchar(255)"`
	Role         UserRole `gorm:"column:rol;type:varchar(20);default:'COMPRADOR';not null"`
	PhotoPath    *string  `gorm:"column:foto;type:varchar(255)"`

	CreatedAt time.Time `gorm:"column:fecha_registro"`
	UpdatedAt time.Time `gorm:"column:fecha_actualizacion"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.Surname)
}
