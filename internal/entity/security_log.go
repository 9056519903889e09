package entity

import (
	"time"

	"gorm.io/datatypes"
)

type SecurityAction string

const (
	UserRegistered SecurityAction = "user_registered"
	LoginSuccess   SecurityAction = "login_success"
	LoginFailed    SecurityAction = "login_failed"
	Logout         SecurityAction = "logout"
	ProfileUpdated SecurityAction = "profile_updated"
)

type SecurityLog struct {
	ID uint `gorm:"column:id;primaryKey"`

	UserID *uint `gorm:"column:id_usuario;index"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`

	IPAddress *string        `gorm:"column:ip;type:varchar(45)"`
	Action    SecurityAction `gorm:"column:accion;type:varchar(40);not null"`

	Metadata datatypes.JSON `gorm:"column:metadata"`

	CreatedAt time.Time `gorm:"column:created_at"`
}

func (SecurityLog) TableName() string { return "registro_seguridad" }
