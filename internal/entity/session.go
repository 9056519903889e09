package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-tracked state behind the session cookie. It keeps a
// copy of the user's profile so request handling never goes back to the
// usuarios table just to greet the user.
type Session struct {
	ID     uuid.UUID `gorm:"column:id;type:char(36);primaryKey"`
	UserID uint      `gorm:"column:id_usuario;not null;index"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Name      string   `gorm:"column:nombre;type:varchar(100)"`
	Surname   string   `gorm:"column:apellido;type:varchar(100)"`
	Email     string   `gorm:"column:correo;type:varchar(255)"`
	Phone     string   `gorm:"column:telefono;type:varchar(30)"`
	Address   string   `gorm:"column:direccion;type:varchar(255)"`
	Role      UserRole `gorm:"column:rol;type:varchar(20)"`
	PhotoPath *string  `gorm:"column:foto;type:varchar(255)"`

	IPAddress *string `gorm:"column:ip;type:varchar(45)"`
	UserAgent *string `gorm:"column:user_agent;type:text"`

	ExpiresAt time.Time  `gorm:"column:expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`

	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Session) TableName() string { return "sesiones" }

// Snapshot copies the user's profile onto the session row.
func (s *Session) Snapshot(user *User) {
	s.UserID = user.ID
	s.Name = user.Name
	s.Surname = user.Surname
	s.Email = user.Email
	s.Phone = user.Phone
	s.Address = user.Address
	s.Role = user.Role
	s.PhotoPath = user.PhotoPath
}

func (s *Session) FullName() string {
	user := User{Name: s.Name, Surname: s.Surname}
	return user.FullName()
}
