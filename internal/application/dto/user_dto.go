package dto

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest actualización parcial del perfil propio.
type UpdateUserRequest struct {
	Username       *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=6"`
	Name           *string `json:"name"`
	ProfilePicture *string `json:"profile_picture"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de la contraseña.
type UserResponse struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

// LoginResponse token de sesión más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
