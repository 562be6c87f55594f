package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión más la identidad firmada en él.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
