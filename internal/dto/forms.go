package dto

// Form DTOs bound from the server-rendered pages. Field names follow the
// original form contract, which is in Spanish.

type RegisterForm struct {
	Name            string `form:"nombre"`
	Surname         string `form:"apellido"`
	Email           string `form:"correo" validate:"omitempty,email"`
	Phone           string `form:"telefono"`
	Password        string `form:"contraseña"`
	ConfirmPassword string `form:"confirm_password"`
	RoleLabel       string `form:"rol"`
	Address         string `form:"direccion"`
}

type LoginForm struct {
	Email    string `form:"correo" validate:"omitempty,email"`
	Password string `form:"contraseña"`
}

type EditProfileForm struct {
	Name    string `form:"nombre"`
	Surname string `form:"apellido"`
	Email   string `form:"correo" validate:"omitempty,email"`
	Phone   string `form:"telefono"`
	Address string `form:"direccion"`
}

type NewProductForm struct {
	Name        string  `form:"nombre" validate:"required"`
	Description string  `form:"descripcion"`
	Category    string  `form:"categoria" validate:"required"`
	Price       float64 `form:"precio" validate:"required,gt=0"`
	Stock       int     `form:"stock" validate:"gte=0"`
}

type NewReviewForm struct {
	Rating  int    `form:"calificacion" validate:"required,min=1,max=5"`
	Comment string `form:"comentario"`
}

type NewOrderForm struct {
	ProductID uint `form:"producto_id" validate:"required"`
	Quantity  int  `form:"cantidad" validate:"required,min=1"`
}
